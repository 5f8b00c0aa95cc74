// Copyright 2019 James Cote
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rs256

import "errors"

// ErrMessageTooLong is returned by Sign when the modulus is too short
// to hold the padded DigestInfo: k must be at least 62 bytes
// (51-byte DigestInfo + the 0x00 0x01 leading bytes + the 0x00
// separator byte + an 8-byte minimum padding string).
var ErrMessageTooLong = errors.New("rs256: message too long for modulus")

// ErrIntegerOutOfRange is returned by Sign when the encoded message
// representative m is not smaller than the modulus n, or when I2OSP
// is asked to emit an integer that does not fit in the requested
// byte length.
var ErrIntegerOutOfRange = errors.New("rs256: integer out of range")
