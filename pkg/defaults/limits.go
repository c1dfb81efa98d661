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

package defaults

// Request and processing limits.
const (
	// MaxBodyBytes caps the size of an HTTP request body.
	MaxBodyBytes int64 = 1 << 20

	// MaxBulkRequests caps the number of items in one bulk rescale request.
	MaxBulkRequests = 100

	// MaxTextLength caps the length of one text to parse or rescale.
	MaxTextLength = 64 << 10

	// ScaleConcurrency is the number of recipe lines rescaled in parallel.
	ScaleConcurrency = 8
)
