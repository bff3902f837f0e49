// Package rpc provides the pure serialize/deserialize boundary between the
// SDK core and an external JSON-RPC transport, plus the two
// capability interfaces the core consumes from that transport:
// send_raw_transaction and check_confirmation. The HTTP transport itself is
// out of scope — callers supply their own Transport.
package rpc

import (
	"encoding/hex"

	"github.com/sirupsen/logrus"

	"github.com/phantasma-io/phantasma-go-sdk/carbontx"
	"github.com/phantasma-io/phantasma-go-sdk/keys"
	"github.com/phantasma-io/phantasma-go-sdk/legacy"
	"github.com/phantasma-io/phantasma-go-sdk/wire"
)

// ConfirmationState mirrors the three states a node reports for a
// submitted transaction.
type ConfirmationState int

const (
	Pending ConfirmationState = iota
	Confirmed
	Rejected
)

func (s ConfirmationState) String() string {
	switch s {
	case Pending:
		return "Pending"
	case Confirmed:
		return "Confirmed"
	case Rejected:
		return "Rejected"
	default:
		return "Unknown"
	}
}

// Confirmation is the result of check_confirmation: the node's state, its
// contract-level result, and its debug comment, surfaced verbatim so
// callers can diagnose gas or witness problems.
type Confirmation struct {
	State        ConfirmationState
	Result       string
	DebugComment string
}

// Transport is the external collaborator the core consumes exactly two
// capabilities from: submitting a raw hex-encoded transaction and polling
// its confirmation state. Implementations own the HTTP/JSON-RPC wire
// details; this package only shapes what the core needs from them.
type Transport interface {
	SendRawTransaction(hexTx string) (txHash string, err error)
	CheckConfirmation(txHash string) (Confirmation, error)
}

// SerializeLegacyTx renders a signed legacy transaction as lowercase hex,
// the form the RPC transport expects.
func SerializeLegacyTx(tx legacy.Transaction) (string, error) {
	return hex.EncodeToString(tx.Marshal()), nil
}

// DeserializeLegacyTx parses a hex-encoded legacy transaction.
func DeserializeLegacyTx(hexTx string) (legacy.Transaction, error) {
	raw, err := hex.DecodeString(hexTx)
	if err != nil {
		return legacy.Transaction{}, wire.Wrap(wire.KindDataFormat, "invalid hex transaction", err)
	}
	c := wire.NewCursor(raw, wire.Strict)
	tx := legacy.ParseTransaction(c)
	if err := c.Err(); err != nil {
		return legacy.Transaction{}, err
	}
	return tx, nil
}

// SerializeCarbonTx renders a signed Carbon TxMsg as lowercase hex.
func SerializeCarbonTx(tx carbontx.TxMsg) (string, error) {
	b, err := tx.Marshal()
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// DeserializeCarbonTx parses a hex-encoded Carbon TxMsg.
func DeserializeCarbonTx(hexTx string) (carbontx.TxMsg, error) {
	raw, err := hex.DecodeString(hexTx)
	if err != nil {
		return carbontx.TxMsg{}, wire.Wrap(wire.KindDataFormat, "invalid hex transaction", err)
	}
	c := wire.NewCursor(raw, wire.Strict)
	tx := carbontx.ParseTxMsg(c)
	if err := c.Err(); err != nil {
		return carbontx.TxMsg{}, err
	}
	return tx, nil
}

// Client wraps a Transport with structured request/response tracing
//. It adds no behavior beyond logging
// and the hex-encoding boundary the core expects of its RPC collaborator.
type Client struct {
	cfg       ClientConfig
	transport Transport
	log       *logrus.Entry
}

// NewClient builds a Client from a validated ClientConfig and a caller's
// Transport implementation.
func NewClient(cfg ClientConfig, transport Transport) (*Client, error) {
	if err := ValidateClientConfig(cfg); err != nil {
		return nil, err
	}
	logger := logrus.New()
	if lvl, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(lvl)
	}
	return &Client{
		cfg:       cfg,
		transport: transport,
		log:       logger.WithField("nexus", cfg.Nexus),
	}, nil
}

// SendRawLegacyTransaction serializes and submits a signed legacy
// transaction, returning the node-assigned hash.
func (c *Client) SendRawLegacyTransaction(tx legacy.Transaction) (string, error) {
	hexTx, err := SerializeLegacyTx(tx)
	if err != nil {
		c.log.WithError(err).Error("failed to serialize legacy transaction")
		return "", err
	}
	c.log.WithField("bytes", len(hexTx)/2).Debug("submitting legacy transaction")
	hash, err := c.transport.SendRawTransaction(hexTx)
	if err != nil {
		c.log.WithError(err).Error("send_raw_transaction failed")
		return "", err
	}
	c.log.WithField("tx_hash", hash).Info("legacy transaction submitted")
	return hash, nil
}

// SendRawCarbonTransaction serializes and submits a signed Carbon TxMsg.
func (c *Client) SendRawCarbonTransaction(tx carbontx.TxMsg) (string, error) {
	hexTx, err := SerializeCarbonTx(tx)
	if err != nil {
		c.log.WithError(err).Error("failed to serialize carbon transaction")
		return "", err
	}
	c.log.WithField("bytes", len(hexTx)/2).Debug("submitting carbon transaction")
	hash, err := c.transport.SendRawTransaction(hexTx)
	if err != nil {
		c.log.WithError(err).Error("send_raw_transaction failed")
		return "", err
	}
	c.log.WithField("tx_hash", hash).Info("carbon transaction submitted")
	return hash, nil
}

// CheckConfirmation polls the node for a transaction's confirmation state,
// surfacing Rejected's result/debug_comment verbatim.
func (c *Client) CheckConfirmation(txHash string) (Confirmation, error) {
	conf, err := c.transport.CheckConfirmation(txHash)
	if err != nil {
		c.log.WithError(err).WithField("tx_hash", txHash).Error("check_confirmation failed")
		return Confirmation{}, err
	}
	entry := c.log.WithField("tx_hash", txHash).WithField("state", conf.State.String())
	if conf.State == Rejected {
		entry.WithField("debug_comment", conf.DebugComment).Warn("transaction rejected")
	} else {
		entry.Debug("confirmation polled")
	}
	return conf, nil
}

// SignerAddress renders a PhantasmaKeys' address text form for RPC request
// construction convenience.
func SignerAddress(k *keys.PhantasmaKeys) string {
	return k.Address().Text()
}
