package utils

import (
	"github.com/ethereum/go-ethereum/common"

	"safequeue-viz/internal/model"
)

// SameAddress reports whether two hex address strings name the same
// account. Comparison goes through common.Address so casing and the 0x
// prefix never matter.
func SameAddress(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return common.HexToAddress(a) == common.HexToAddress(b)
}

// ContainsAddress reports whether addr appears in the given address list
func ContainsAddress(list []model.AddressEx, addr string) bool {
	for _, entry := range list {
		if SameAddress(entry.Value, addr) {
			return true
		}
	}
	return false
}

// ChecksumAddress renders an address string in its EIP-55 checksum form
func ChecksumAddress(addr string) string {
	return common.HexToAddress(addr).Hex()
}
