package wallet

import (
	"bytes"
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"
	"gitlab.com/TitanInd/crowdfunding/internal/lib"
)

// well known development mnemonic, first account 0x9858EfFD232B4033E47d90003D41EC34EcaEda94
const testMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

func TestConnectFromMnemonic(t *testing.T) {
	w := NewWallet(testMnemonic, "", 0, lib.NewTestLogger())

	_, ok := w.Address()
	require.False(t, ok)
	require.Nil(t, w.Signer())

	err := w.Connect(context.Background())
	require.NoError(t, err)

	addr, ok := w.Address()
	require.True(t, ok)
	require.Equal(t, common.HexToAddress("0x9858EfFD232B4033E47d90003D41EC34EcaEda94"), addr)
	require.Equal(t, addr, w.Signer().Address())
}

func TestConnectAccountIndex(t *testing.T) {
	w0 := NewWallet(testMnemonic, "", 0, lib.NewTestLogger())
	w1 := NewWallet(testMnemonic, "", 1, lib.NewTestLogger())
	require.NoError(t, w0.Connect(context.Background()))
	require.NoError(t, w1.Connect(context.Background()))

	addr0, _ := w0.Address()
	addr1, _ := w1.Address()
	require.NotEqual(t, addr0, addr1)
}

func TestConnectFromPrivateKey(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	w := NewWallet("", hexutil.Encode(crypto.FromECDSA(key)), 0, lib.NewTestLogger())

	require.NoError(t, w.Connect(context.Background()))

	addr, ok := w.Address()
	require.True(t, ok)
	require.Equal(t, crypto.PubkeyToAddress(key.PublicKey), addr)
}

func TestConnectWithoutCredentials(t *testing.T) {
	w := NewWallet("", "", 0, lib.NewTestLogger())

	require.False(t, w.HasCredentials())
	require.ErrorIs(t, w.Connect(context.Background()), ErrNoCredentials)
}

func TestConnectInvalidMnemonic(t *testing.T) {
	w := NewWallet("not a mnemonic", "", 0, lib.NewTestLogger())

	require.ErrorIs(t, w.Connect(context.Background()), ErrDerivation)
	_, ok := w.Address()
	require.False(t, ok)
}

func TestDisconnect(t *testing.T) {
	w := NewWallet(testMnemonic, "", 0, lib.NewTestLogger())
	require.NoError(t, w.Connect(context.Background()))

	w.Disconnect()

	_, ok := w.Address()
	require.False(t, ok)
	require.Nil(t, w.Signer())
}

func TestSignerTransactor(t *testing.T) {
	w := NewWallet(testMnemonic, "", 0, lib.NewTestLogger())
	require.NoError(t, w.Connect(context.Background()))

	opts, err := w.Signer().NewTransactor(big.NewInt(11155111))
	require.NoError(t, err)
	require.Equal(t, w.Signer().Address(), opts.From)
}

func TestConnectLogsShortAddress(t *testing.T) {
	var buf bytes.Buffer
	log, err := lib.NewLoggerMemory(lib.LoggerConfig{Level: "info"}, &buf)
	require.NoError(t, err)

	w := NewWallet(testMnemonic, "", 0, log)
	require.NoError(t, w.Connect(context.Background()))
	w.Disconnect()

	require.Contains(t, buf.String(), "wallet connected, address 0x985..a94")
	require.Contains(t, buf.String(), "wallet disconnected, address 0x985..a94")
	require.NotContains(t, buf.String(), "0x9858EfFD232B4033E47d90003D41EC34EcaEda94")
}
