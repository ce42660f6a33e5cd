package mongodb

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

type precioDoc struct {
	Precio decimal.Decimal `bson:"precio"`
}

func TestDecimalCodec_Decimal128(t *testing.T) {
	reg := NewRegistry()

	raw, err := bson.MarshalWithRegistry(reg, precioDoc{Precio: decimal.RequireFromString("1999.99")})
	require.NoError(t, err)

	val := bson.Raw(raw).Lookup("precio")
	assert.Equal(t, bsontype.Decimal128, val.Type)

	var out precioDoc
	require.NoError(t, bson.UnmarshalWithRegistry(reg, raw, &out))
	assert.True(t, out.Precio.Equal(decimal.RequireFromString("1999.99")))
}

func TestDecimalCodec_AceptaNumerosLegados(t *testing.T) {
	reg := NewRegistry()
	cases := map[string]struct {
		in   bson.M
		want string
	}{
		"double": {bson.M{"precio": 150.5}, "150.5"},
		"int32":  {bson.M{"precio": int32(20)}, "20"},
		"int64":  {bson.M{"precio": int64(7)}, "7"},
		"null":   {bson.M{"precio": nil}, "0"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			raw, err := bson.Marshal(tc.in)
			require.NoError(t, err)

			var out precioDoc
			require.NoError(t, bson.UnmarshalWithRegistry(reg, raw, &out))
			assert.True(t, out.Precio.Equal(decimal.RequireFromString(tc.want)), "got %s", out.Precio)
		})
	}
}

func TestDecimalCodec_TipoNoSoportado(t *testing.T) {
	raw, err := bson.Marshal(bson.M{"precio": "caro"})
	require.NoError(t, err)

	var out precioDoc
	assert.Error(t, bson.UnmarshalWithRegistry(NewRegistry(), raw, &out))
}
