// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package bo reports the host's native byte order.
//
// The order is selected at compile time via build tags on the common Go
// ports, with a portable runtime probe as the fallback. The f64view package
// uses it only for the informational HostByteOrder helper; view encoding is
// always an explicit caller choice.
package bo
