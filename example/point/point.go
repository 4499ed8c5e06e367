// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package point shows a generated builder in use.
package point

import "github.com/rfaulhaber/proc-macro-workshop/pkg/option"

//go:generate go run ../../cmd generate --format go --output . point.yaml

// Point is a labelled coordinate with an optional Y component.
type Point struct {
	X     int32
	Y     option.Option[int32]
	Label string
}
