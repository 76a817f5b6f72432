package integrity

import (
	"context"
	"testing"

	"stock-counter/core/storage/mocks"
	"stock-counter/feature/inventory/testutil"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestService_Storage(t *testing.T) {
	mockClient := new(mocks.Client)
	logger := zap.NewNop()
	svc := NewService(mockClient, "estoque", logger, nil)

	mockClient.On("BucketExists", mock.Anything, "estoque").Return(true, nil)
	ch := make(chan minio.ObjectInfo)
	close(ch)
	mockClient.On("ListObjects", mock.Anything, "estoque", mock.Anything).Return((<-chan minio.ObjectInfo)(ch))
	mockClient.On("PutObject", mock.Anything, "estoque", "snapshots/", mock.Anything, int64(0), mock.Anything).Return(minio.UploadInfo{}, nil)

	report, err := svc.CheckStorage(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"snapshots"}, report.MissingFolders)

	require.NoError(t, svc.FixStorage(context.Background(), report))
	mockClient.AssertExpectations(t)
}

func TestService_Database(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewService(nil, "estoque", zap.NewNop(), db)

	schema, err := svc.CheckSchema()
	require.NoError(t, err)
	assert.True(t, schema.Matched)

	testutil.SeedProduct(t, db, "123", "Caneta", 3)
	ledger, err := svc.CheckLedger(context.Background())
	require.NoError(t, err)
	assert.False(t, ledger.Matched)
	assert.Len(t, ledger.Issues, 1)
}

func TestService_NoDatabase(t *testing.T) {
	svc := NewService(nil, "estoque", zap.NewNop(), nil)

	_, err := svc.CheckSchema()
	assert.Error(t, err)
	_, err = svc.CheckLedger(context.Background())
	assert.Error(t, err)
	_, err = svc.CheckStorage(context.Background())
	assert.Error(t, err)
}
