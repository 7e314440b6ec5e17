// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package spsc

// RaceEnabled is true when the race detector is active.
// Used by tests to skip concurrent tests. Both queue designs synchronize
// through atomix acquire-release operations, which the race detector cannot
// see, so it reports false positives.
const RaceEnabled = true
