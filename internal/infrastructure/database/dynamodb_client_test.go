package database

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewDynamoDBConfigFromEnv(t *testing.T) {
	t.Setenv("AWS_REGION", "sa-east-1")
	t.Setenv("AWS_ACCESS_KEY_ID", "key")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "secret")

	cfg, err := NewDynamoDBConfigFromEnv(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "sa-east-1", cfg.Region)

	creds, err := cfg.Credentials.Retrieve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "key", creds.AccessKeyID)
	assert.Equal(t, "secret", creds.SecretAccessKey)
}

func TestWithEndpoint(t *testing.T) {
	var o dynamodb.Options
	withEndpoint("")(&o)
	assert.Nil(t, o.BaseEndpoint)

	withEndpoint("http://localhost:8000")(&o)
	require.NotNil(t, o.BaseEndpoint)
	assert.Equal(t, "http://localhost:8000", *o.BaseEndpoint)
}

func TestConnectDynamoDB(t *testing.T) {
	t.Setenv("DYNAMODB_ENDPOINT", "http://localhost:8000")
	client, err := ConnectDynamoDB(context.Background(), zap.NewNop())
	require.NoError(t, err)
	assert.NotNil(t, client)
}
