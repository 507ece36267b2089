// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils holds small helpers shared across the library.
package utils

import "github.com/google/uuid"

// GUIDGenerator produces guids for newly created records. Record identity is
// immutable after creation, so a generator is the only place guids are ever
// minted.
type GUIDGenerator struct {
}

func NewGUIDGenerator() *GUIDGenerator {
	return &GUIDGenerator{}
}

// Generate returns a time-ordered V7 UUID, falling back to a random V4 when
// V7 generation fails.
func (g *GUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
