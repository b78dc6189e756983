// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

package syntax

import "github.com/minio/highwayhash"

var fingerprintKey = []byte("codeissues-fingerprint-key-00000")

// Fingerprint returns a 64-bit hash of the text of n.
//
// Fingerprints identify a node's content independently of its position and are used to
// detect that a tree changed between analysis and rewrite.
func Fingerprint(n *Node) uint64 {
	if n == nil {
		return 0
	}

	return highwayhash.Sum64([]byte(n.text), fingerprintKey)
}
