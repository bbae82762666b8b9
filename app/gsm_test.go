package app

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
	"github.com/dan13ram/ada-bridge/models"
	gax "github.com/googleapis/gax-go/v2"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

type mockSecretManagerClient struct {
	secrets map[string]string
	closed  bool
}

func (m *mockSecretManagerClient) AccessSecretVersion(_ context.Context, req *secretmanagerpb.AccessSecretVersionRequest, _ ...gax.CallOption) (*secretmanagerpb.AccessSecretVersionResponse, error) {
	value, ok := m.secrets[req.Name]
	if !ok {
		return nil, errors.New("not found")
	}
	return &secretmanagerpb.AccessSecretVersionResponse{
		Payload: &secretmanagerpb.SecretPayload{Data: []byte(value)},
	}, nil
}

func (m *mockSecretManagerClient) Close() error {
	m.closed = true
	return nil
}

func TestReadKeysFromGSM(t *testing.T) {
	defer func() {
		newSecretManagerClient = func(ctx context.Context) (SecretManagerClient, error) {
			return nil, errors.New("not configured")
		}
		Config.GoogleSecretManager = models.GoogleSecretManagerConfig{}
	}()

	t.Run("Disabled", func(t *testing.T) {
		Config.GoogleSecretManager.Enabled = false
		newSecretManagerClient = func(ctx context.Context) (SecretManagerClient, error) {
			t.Fatal("client should not be created")
			return nil, nil
		}

		readKeysFromGSM()
	})

	t.Run("Reads Empty Secrets", func(t *testing.T) {
		client := &mockSecretManagerClient{secrets: map[string]string{
			"projects/project/secrets/mongo/versions/latest":   "mongodb://secret",
			"projects/project/secrets/cardano/versions/latest": "secret passphrase",
			"projects/project/secrets/ckb/versions/latest":     "secret mnemonic",
		}}
		newSecretManagerClient = func(ctx context.Context) (SecretManagerClient, error) {
			return client, nil
		}

		Config.GoogleSecretManager.Enabled = true
		Config.GoogleSecretManager.ProjectID = "project"
		Config.GoogleSecretManager.MongoSecretName = "mongo"
		Config.GoogleSecretManager.CardanoSecretName = "cardano"
		Config.GoogleSecretManager.CkbMnemonicSecretName = "ckb"
		Config.MongoDB.URI = "mongodb://configured"
		Config.Cardano.Passphrase = ""
		Config.Ckb.Mnemonic = ""
		Config.Ckb.GcpKmsKeyName = ""

		readKeysFromGSM()

		assert.Equal(t, "mongodb://configured", Config.MongoDB.URI)
		assert.Equal(t, "secret passphrase", Config.Cardano.Passphrase)
		assert.Equal(t, "secret mnemonic", Config.Ckb.Mnemonic)
		assert.True(t, client.closed)
	})

	t.Run("Missing Secret", func(t *testing.T) {
		client := &mockSecretManagerClient{secrets: map[string]string{}}
		newSecretManagerClient = func(ctx context.Context) (SecretManagerClient, error) {
			return client, nil
		}

		Config.GoogleSecretManager.Enabled = true
		Config.GoogleSecretManager.ProjectID = "project"
		Config.GoogleSecretManager.CardanoSecretName = "cardano"
		Config.Cardano.Passphrase = ""

		defer func() { log.StandardLogger().ExitFunc = nil }()
		log.StandardLogger().ExitFunc = func(num int) { panic(fmt.Sprintf("exit %d", num)) }

		assert.Panics(t, func() { readKeysFromGSM() })
	})

	t.Run("Empty Project", func(t *testing.T) {
		Config.GoogleSecretManager.Enabled = true
		Config.GoogleSecretManager.ProjectID = ""

		defer func() { log.StandardLogger().ExitFunc = nil }()
		log.StandardLogger().ExitFunc = func(num int) { panic(fmt.Sprintf("exit %d", num)) }

		assert.Panics(t, func() { readKeysFromGSM() })
	})
}
