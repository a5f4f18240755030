// SPDX-License-Identifier: MIT

package detect

// Collect_TestOnly exposes the mask-to-keypoint mapping.
var Collect_TestOnly = collect
