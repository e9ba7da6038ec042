// Copyright (c) 2023, Luke Chambers.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package logging wraps log/slog with backtrack's defaults: structured JSON
// records on stderr, module and version context on every record, and
// source-location tracking when running at debug level.
//
// Set the default logger early in main and use slog as normal:
//
//	logging.SetDefaultStructuredLoggerWithLevel("backtrack", version, logLevel)
//	slog.Info("running tests", "compilers", len(compilers))
//
// The LOG_LEVEL environment variable (debug, info, warn, error) selects the
// level when none is passed explicitly; it defaults to info.
package logging
