// Copyright 2024 The sgtree Authors
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

package sgtree

import "errors"

var (
	// ErrCapacityExceeded is returned when an insertion would exceed the
	// fixed arena capacity chosen at construction time.  The tree is left
	// exactly as it was before the failed operation.
	ErrCapacityExceeded = errors.New("sgtree: arena capacity exceeded")

	// ErrBalanceFactorOutOfRange is returned by SetBalanceFactor when the
	// requested alpha falls outside [0.5, 1.0).
	ErrBalanceFactorOutOfRange = errors.New("sgtree: balance factor out of range [0.5, 1.0)")
)
