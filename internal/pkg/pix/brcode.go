// Package pix encodes static, merchant-presented PIX payment codes
// (EMV-style "BR Code"). The output must be byte-exact: wallets validate
// the trailing CRC over the whole payload, so even field ordering matters.
package pix

import (
	"fmt"
	"strings"

	"entregas/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const (
	maxMerchantNameLen = 25
	maxMerchantCityLen = 15
)

// StaticCode describes one merchant-presented payment code.
type StaticCode struct {
	// Key is the merchant's PIX key (CPF/CNPJ, phone, e-mail or random key).
	Key string
	// MerchantName is truncated to 25 characters on encode.
	MerchantName string
	// MerchantCity is truncated to 15 characters on encode.
	MerchantCity string
	// Amount is the charged value, rendered with two decimal places.
	Amount decimal.Decimal
}

// Encode renders the BR Code payload as a single ASCII string, checksum
// included.
func (c StaticCode) Encode() (string, error) {
	if c.Key == "" {
		return "", errs.NewValueIsRequiredError("pix key")
	}
	if c.MerchantName == "" {
		return "", errs.NewValueIsRequiredError("merchant name")
	}
	if c.MerchantCity == "" {
		return "", errs.NewValueIsRequiredError("merchant city")
	}
	if c.Amount.IsNegative() {
		return "", errs.NewValueIsInvalidErrorWithCause(
			"pix amount",
			fmt.Errorf("%s is negative", c.Amount),
		)
	}

	var payload strings.Builder
	payload.WriteString(tlv("00", "01"))
	payload.WriteString(tlv("26", tlv("00", "BR.GOV.BCB.PIX")+tlv("01", c.Key)))
	payload.WriteString(tlv("52", "0000"))
	payload.WriteString(tlv("53", "986"))
	payload.WriteString(tlv("54", c.Amount.StringFixed(2)))
	payload.WriteString(tlv("58", "BR"))
	payload.WriteString(tlv("59", truncate(c.MerchantName, maxMerchantNameLen)))
	payload.WriteString(tlv("60", truncate(c.MerchantCity, maxMerchantCityLen)))
	payload.WriteString(tlv("62", tlv("05", "***")))

	// The checksum field's own tag and length are part of the checksummed bytes.
	payload.WriteString("6304")

	body := payload.String()
	return body + fmt.Sprintf("%04X", crc16([]byte(body))), nil
}

// tlv renders one tag-length-value field. Lengths are byte counts rendered
// as two decimal digits.
func tlv(tag, value string) string {
	return fmt.Sprintf("%s%02d%s", tag, len(value), value)
}

func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}

// crc16 implements CRC-16/CCITT-FALSE: polynomial 0x1021, initial register
// 0xFFFF, no input or output reflection.
func crc16(data []byte) uint16 {
	crc := uint16(0xFFFF)
	for _, b := range data {
		crc ^= uint16(b) << 8
		for range 8 {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ 0x1021
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}
