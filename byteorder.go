// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package f64view

import (
	"encoding/binary"
	"strings"

	"code.hybscloud.com/f64view/internal/bo"
)

// Canonical byte order tokens accepted by ParseByteOrder.
const (
	LittleEndian = "little-endian"
	BigEndian    = "big-endian"
)

// ParseByteOrder resolves a textual byte order token, case-insensitively,
// into its encoding/binary order. Unrecognized tokens fail with
// ErrInvalidByteOrder.
func ParseByteOrder(token string) (binary.ByteOrder, error) {
	switch strings.ToLower(token) {
	case LittleEndian:
		return binary.LittleEndian, nil
	case BigEndian:
		return binary.BigEndian, nil
	}
	return nil, ErrInvalidByteOrder
}

// resolveByteOrder validates an order before any buffer work happens.
// Only the two stdlib orders are meaningful for a fixed-layout view; nil
// and custom ByteOrder implementations are rejected.
func resolveByteOrder(order binary.ByteOrder) error {
	if order == binary.LittleEndian || order == binary.BigEndian {
		return nil
	}
	return ErrInvalidByteOrder
}

// HostByteOrder returns the platform's native byte order. It is purely
// informational: construction never infers a view's order from the host,
// but callers matching a local in-memory layout can pass it explicitly.
func HostByteOrder() binary.ByteOrder { return bo.Native() }
