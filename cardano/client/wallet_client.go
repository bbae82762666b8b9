package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dan13ram/ada-bridge/app"
	"github.com/dan13ram/ada-bridge/models"

	log "github.com/sirupsen/logrus"
)

type WalletClient interface {
	ListTransactions(walletID string) ([]Transaction, error)
	GetTransaction(walletID string, txID string) (*Transaction, error)
	EstimateFee(walletID string, payments []Payment, metadata TxMetadata) (*FeeEstimate, error)
	SendPayment(walletID string, passphrase string, payments []Payment, metadata TxMetadata) (*Transaction, error)
	GetAvailableBalance(walletID string) (uint64, error)
	GetNetworkInformation() (*NetworkInformation, error)
}

type walletClient struct {
	baseURL string
	timeout time.Duration
	http    *http.Client
}

type paymentRequest struct {
	Passphrase string     `json:"passphrase,omitempty"`
	Payments   []Payment  `json:"payments"`
	Metadata   TxMetadata `json:"metadata,omitempty"`
}

func (c *walletClient) do(method string, path string, body interface{}, result interface{}) error {
	var reader io.Reader
	if body != nil {
		bz, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(bz)
	}

	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bz, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr apiError
		if err := json.Unmarshal(bz, &apiErr); err == nil && apiErr.Message != "" {
			return fmt.Errorf("cardano wallet %s %s: %s: %s", method, path, apiErr.Code, apiErr.Message)
		}
		return fmt.Errorf("cardano wallet %s %s: status %d", method, path, resp.StatusCode)
	}

	if result == nil {
		return nil
	}
	return json.Unmarshal(bz, result)
}

func walletPath(walletID string, parts ...string) string {
	path := "/v2/wallets/" + url.PathEscape(walletID)
	for _, part := range parts {
		path += "/" + url.PathEscape(part)
	}
	return path
}

func (c *walletClient) ListTransactions(walletID string) ([]Transaction, error) {
	txs := []Transaction{}
	err := c.do(http.MethodGet, walletPath(walletID, "transactions"), nil, &txs)
	return txs, err
}

func (c *walletClient) GetTransaction(walletID string, txID string) (*Transaction, error) {
	var tx Transaction
	if err := c.do(http.MethodGet, walletPath(walletID, "transactions", txID), nil, &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}

func (c *walletClient) EstimateFee(walletID string, payments []Payment, metadata TxMetadata) (*FeeEstimate, error) {
	var fee FeeEstimate
	req := paymentRequest{Payments: payments, Metadata: metadata}
	if err := c.do(http.MethodPost, walletPath(walletID, "payment-fees"), req, &fee); err != nil {
		return nil, err
	}
	return &fee, nil
}

func (c *walletClient) SendPayment(walletID string, passphrase string, payments []Payment, metadata TxMetadata) (*Transaction, error) {
	var tx Transaction
	req := paymentRequest{Passphrase: passphrase, Payments: payments, Metadata: metadata}
	if err := c.do(http.MethodPost, walletPath(walletID, "transactions"), req, &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}

func (c *walletClient) GetAvailableBalance(walletID string) (uint64, error) {
	var wallet Wallet
	if err := c.do(http.MethodGet, walletPath(walletID), nil, &wallet); err != nil {
		return 0, err
	}
	return wallet.Balance.Available.Quantity, nil
}

func (c *walletClient) GetNetworkInformation() (*NetworkInformation, error) {
	var info NetworkInformation
	if err := c.do(http.MethodGet, "/v2/network/information", nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// IsConfirmed reports whether tx is in the ledger with at least confirmations blocks on top.
func IsConfirmed(tx *Transaction, confirmations int64) bool {
	if tx == nil || tx.Status != models.TransactionStatusInLedger {
		return false
	}
	if confirmations == 0 {
		return true
	}
	return tx.Depth != nil && tx.Depth.Quantity >= confirmations
}

func NewClient(config models.CardanoConfig) (WalletClient, error) {
	if config.WalletURL == "" {
		return nil, fmt.Errorf("cardano wallet url is empty")
	}
	if _, err := url.ParseRequestURI(config.WalletURL); err != nil {
		return nil, fmt.Errorf("invalid cardano wallet url: %w", err)
	}

	timeout := time.Duration(config.RPCTimeoutMillis) * time.Millisecond
	log.Debug("[CARDANO] Creating wallet client for ", config.WalletURL)
	return &walletClient{
		baseURL: strings.TrimRight(config.WalletURL, "/"),
		timeout: timeout,
		http:    &http.Client{Timeout: timeout},
	}, nil
}

// ValidateNetwork checks the wallet backend is reachable, synced and on the
// configured network.
func ValidateNetwork(client WalletClient) {
	log.Debugln("[CARDANO]", "Validating network")
	info, err := client.GetNetworkInformation()
	if err != nil {
		log.Fatalln("[CARDANO]", "Failed to get network information:", err)
	}

	if info.SyncProgress.Status != "ready" {
		log.Warnln("[CARDANO]", "Wallet backend is not synced:", info.SyncProgress.Status)
	}

	tag := app.Config.Cardano.NetworkTag
	if tag != "" && info.NetworkInfo.NetworkID != tag {
		log.Fatalln("[CARDANO]", "Network Mismatch", "expected", tag, "got", info.NetworkInfo.NetworkID)
	}

	log.Debugln("[CARDANO]", "height", info.NodeTip.Height.Quantity)
	log.Infoln("[CARDANO]", "Validated network")
}
