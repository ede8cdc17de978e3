package repository

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"payment_init/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func newTestDynamoClient(url string) *dynamodb.Client {
	return dynamodb.New(dynamodb.Options{
		Region:           "us-east-1",
		BaseEndpoint:     aws.String(url),
		Credentials:      credentials.NewStaticCredentialsProvider("local", "local", ""),
		RetryMaxAttempts: 1,
	})
}

func dynamoServer(t *testing.T, status int, body string, check func(req map[string]any)) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("X-Amz-Target"); got != "DynamoDB_20120810.GetItem" {
			t.Errorf("unexpected target %q", got)
		}
		var req map[string]any
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if check != nil {
			check(req)
		}
		w.Header().Set("Content-Type", "application/x-amz-json-1.0")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
}

func TestOrderDynamoRepository_GetByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		srv := dynamoServer(t, http.StatusOK, `{"Item":{
			"id":{"S":"ord_123"},
			"status":{"S":"PENDING"},
			"total":{"N":"4999"},
			"currency":{"S":"usd"},
			"created_at":{"S":"2024-05-01T10:00:00Z"},
			"updated_at":{"S":"2024-05-01T10:05:00Z"}
		}}`, func(req map[string]any) {
			if req["TableName"] != "orders_test" {
				t.Errorf("unexpected table %v", req["TableName"])
			}
			if req["ConsistentRead"] != true {
				t.Errorf("expected consistent read")
			}
			key, _ := req["Key"].(map[string]any)
			id, _ := key["id"].(map[string]any)
			if id["S"] != "ord_123" {
				t.Errorf("unexpected key %v", req["Key"])
			}
		})
		defer srv.Close()

		repo := NewOrderDynamoRepository(newTestDynamoClient(srv.URL), "orders_test")
		got, err := repo.GetByID(context.Background(), "ord_123")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}

		want := entities.Order{
			ID:        "ord_123",
			Status:    entities.OrderStatusPending,
			Total:     4999,
			Currency:  "usd",
			CreatedAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
			UpdatedAt: time.Date(2024, 5, 1, 10, 5, 0, 0, time.UTC),
		}
		if got.ID != want.ID || got.Status != want.Status || got.Total != want.Total || got.Currency != want.Currency {
			t.Fatalf("unexpected order: %+v", got)
		}
		if !got.CreatedAt.Equal(want.CreatedAt) || !got.UpdatedAt.Equal(want.UpdatedAt) {
			t.Fatalf("unexpected timestamps: %+v", got)
		}
	})

	t.Run("missing item returns zero value", func(t *testing.T) {
		srv := dynamoServer(t, http.StatusOK, `{}`, nil)
		defer srv.Close()

		repo := NewOrderDynamoRepository(newTestDynamoClient(srv.URL), "")
		got, err := repo.GetByID(context.Background(), "ord_404")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if got.ID != "" {
			t.Fatalf("expected zero-value order, got %+v", got)
		}
	})

	t.Run("default table name", func(t *testing.T) {
		repo := NewOrderDynamoRepository(nil, "")
		if repo.tableName != defaultOrdersTableName {
			t.Fatalf("expected %s, got %s", defaultOrdersTableName, repo.tableName)
		}
	})

	t.Run("store error is returned", func(t *testing.T) {
		srv := dynamoServer(t, http.StatusBadRequest, `{"__type":"com.amazonaws.dynamodb.v20120810#ResourceNotFoundException","message":"Requested resource not found"}`, nil)
		defer srv.Close()

		repo := NewOrderDynamoRepository(newTestDynamoClient(srv.URL), "orders")
		_, err := repo.GetByID(context.Background(), "ord_1")
		var rnf *types.ResourceNotFoundException
		if !errors.As(err, &rnf) {
			t.Fatalf("expected ResourceNotFoundException, got %v", err)
		}
	})
}
