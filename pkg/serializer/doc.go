// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
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

// Package serializer reads and writes ingredi documents.
//
// # Output
//
// Writer encodes values as JSON, YAML, a FIELD/VALUE table, or plain text:
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatYAML, path)
//	defer w.Close()
//	if err := w.Serialize(ctx, result); err != nil {
//	    return err
//	}
//
// FormatText writes the Text() of values implementing Texter, such as a
// rescaled ingredient list, and falls back to the table layout otherwise.
//
// # Input
//
// FromFile decodes a JSON or YAML document from a local path or an http(s)
// URL. The format follows the file extension:
//
//	r, err := serializer.FromFile[recipe.Recipe](ctx, "https://example.com/pancakes.yaml")
//
// DecodeBody decodes HTTP request bodies by Content-Type, defaulting to JSON.
//
// # HTTP
//
// RespondJSON buffers the encoded payload before writing headers so that an
// encoding failure never produces a partial response. HttpReader fetches
// remote documents with bounded connect, TLS and header timeouts.
package serializer
