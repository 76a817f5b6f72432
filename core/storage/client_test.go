package storage_test

import (
	"testing"

	"stock-counter/core/storage"

	"github.com/stretchr/testify/assert"
)

func TestNewClient(t *testing.T) {
	tests := []struct {
		name     string
		endpoint string
		useSSL   bool
		wantErr  bool
	}{
		{"PlainHost", "localhost:9000", false, false},
		{"SchemeHTTPIsStripped", "http://localhost:9000", false, false},
		{"SchemeHTTPSIsStripped", "https://s3.amazonaws.com", true, false},
		{"PathIsRejected", "localhost:9000/estoque", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := storage.NewClient(storage.Config{
				Endpoint:  tt.endpoint,
				AccessKey: "testkey",
				SecretKey: "testsecret",
				UseSSL:    tt.useSSL,
				Bucket:    "estoque",
				Region:    "us-east-1",
			})
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, client)
				return
			}
			assert.NoError(t, err)
			assert.NotNil(t, client)
		})
	}
}
