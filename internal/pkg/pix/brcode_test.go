package pix

import (
	"testing"

	"entregas/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCRC16_KnownVector(t *testing.T) {
	// CRC-16/CCITT-FALSE check value for "123456789".
	assert.Equal(t, uint16(0x29B1), crc16([]byte("123456789")))
}

func TestStaticCode_Encode_VerifiedPayload(t *testing.T) {
	code := StaticCode{
		Key:          "28329618000119",
		MerchantName: "SISTEMA DE ENTREGAS",
		MerchantCity: "SAO PAULO",
		Amount:       decimal.RequireFromString("10.50"),
	}

	payload, err := code.Encode()

	require.NoError(t, err)
	assert.Equal(t,
		"00020126360014BR.GOV.BCB.PIX011428329618000119520400005303986540510.505802BR5919SISTEMA DE ENTREGAS6009SAO PAULO62070503***630491D8",
		payload,
	)
}

func TestStaticCode_Encode_ChecksumVariesWithAmount(t *testing.T) {
	code := StaticCode{
		Key:          "28329618000119",
		MerchantName: "SISTEMA DE ENTREGAS",
		MerchantCity: "SAO PAULO",
		Amount:       decimal.RequireFromString("30.00"),
	}

	payload, err := code.Encode()

	require.NoError(t, err)
	assert.Contains(t, payload, "540530.00")
	assert.Equal(t, "63047604", payload[len(payload)-8:])
}

func TestStaticCode_Encode_Deterministic(t *testing.T) {
	code := StaticCode{
		Key:          "28329618000119",
		MerchantName: "SISTEMA DE ENTREGAS",
		MerchantCity: "SAO PAULO",
		Amount:       decimal.RequireFromString("10.50"),
	}

	first, err := code.Encode()
	require.NoError(t, err)
	second, err := code.Encode()
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestStaticCode_Encode_TruncatesNameAndCity(t *testing.T) {
	code := StaticCode{
		Key:          "28329618000119",
		MerchantName: "UM NOME DE COMERCIANTE COMPRIDO DEMAIS",
		MerchantCity: "SAO JOSE DOS CAMPOS",
		Amount:       decimal.RequireFromString("1.00"),
	}

	payload, err := code.Encode()

	require.NoError(t, err)
	assert.Contains(t, payload, "5925UM NOME DE COMERCIANTE CO")
	assert.Contains(t, payload, "6015SAO JOSE DOS CA")
}

func TestStaticCode_Encode_MissingKey(t *testing.T) {
	code := StaticCode{
		MerchantName: "SISTEMA DE ENTREGAS",
		MerchantCity: "SAO PAULO",
		Amount:       decimal.RequireFromString("10.50"),
	}

	_, err := code.Encode()

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestStaticCode_Encode_NegativeAmount(t *testing.T) {
	code := StaticCode{
		Key:          "28329618000119",
		MerchantName: "SISTEMA DE ENTREGAS",
		MerchantCity: "SAO PAULO",
		Amount:       decimal.RequireFromString("-1.00"),
	}

	_, err := code.Encode()

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
