package main

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"connectrpc.com/connect"

	"github.com/abdoachhoubi/billsplitter/internal/auth"
	"github.com/abdoachhoubi/billsplitter/internal/calculator"
	"github.com/abdoachhoubi/billsplitter/internal/models"
	"github.com/abdoachhoubi/billsplitter/internal/service"
	"github.com/abdoachhoubi/billsplitter/internal/storage/sqlite"
	"github.com/abdoachhoubi/billsplitter/pkg/api"
	"github.com/abdoachhoubi/billsplitter/pkg/api/apiconnect"
)

func setupRouter(t *testing.T) *httptest.Server {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "billsplitter-router-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := sqlite.New(filepath.Join(tempDir, "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	jwtManager := auth.NewJWTManager("test-secret", time.Hour)
	server := httptest.NewServer(newRouter(store, jwtManager, calculator.NewStatsCache(0), service.DefaultOptions()))
	t.Cleanup(server.Close)
	return server
}

func bearer[T any](token string, msg *T) *connect.Request[T] {
	req := connect.NewRequest(msg)
	req.Header().Set("Authorization", "Bearer "+token)
	return req
}

func TestRouter_ConnectServices(t *testing.T) {
	server := setupRouter(t)
	ctx := context.Background()

	authClient := apiconnect.NewAuthServiceClient(http.DefaultClient, server.URL)
	contactClient := apiconnect.NewContactServiceClient(http.DefaultClient, server.URL)
	billClient := apiconnect.NewBillServiceClient(http.DefaultClient, server.URL)

	registered, err := authClient.Register(ctx, connect.NewRequest(&api.RegisterRequest{
		Email:     "olivia@example.com",
		Password:  "correct horse",
		FirstName: "Olivia",
		LastName:  "Tester",
	}))
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	token := registered.Msg.Token

	contact, err := contactClient.CreateContact(ctx, bearer(token, &api.CreateContactRequest{
		Contact: api.ContactInput{FirstName: "Zoe"},
	}))
	if err != nil {
		t.Fatalf("CreateContact failed: %v", err)
	}

	yours := models.Amount(40)
	bill, err := billClient.CreateBill(ctx, bearer(token, &api.CreateBillRequest{Bill: api.BillInput{
		Title:          "Concert",
		TotalAmount:    80,
		SplitType:      models.SplitTypeAmount,
		OwnerContactID: contact.Msg.Contact.ID,
		YourSplit:      &yours,
	}}))
	if err != nil {
		t.Fatalf("CreateBill failed: %v", err)
	}
	if !bill.Msg.Bill.IsOwner(contact.Msg.Contact.ID) {
		t.Errorf("owner = %s, want the contact", bill.Msg.Bill.Owner.User.ID)
	}

	stats, err := contactClient.GetContactStats(ctx, bearer(token, &api.GetContactStatsRequest{ContactID: contact.Msg.Contact.ID}))
	if err != nil {
		t.Fatalf("GetContactStats failed: %v", err)
	}
	if stats.Msg.Stats.BalanceYouOwe != 40 || stats.Msg.Stats.NetBalance != -40 {
		t.Errorf("unexpected stats %+v", stats.Msg.Stats)
	}

	t.Run("unauthenticated calls are rejected", func(t *testing.T) {
		_, err := billClient.ListBills(ctx, connect.NewRequest(&api.ListBillsRequest{}))
		if connect.CodeOf(err) != connect.CodeUnauthenticated {
			t.Errorf("expected Unauthenticated, got %v", err)
		}
	})
}

func TestRouter_HTTPEndpoints(t *testing.T) {
	server := setupRouter(t)

	tests := []struct {
		name         string
		method       string
		path         string
		wantStatus   int
		wantContains string
	}{
		{"health", http.MethodGet, "/healthz", http.StatusOK, "ok"},
		{"metrics", http.MethodGet, "/metrics", http.StatusOK, "go_goroutines"},
		{"cors preflight", http.MethodOptions, apiconnect.BillServiceCreateBillProcedure, http.StatusOK, ""},
		{"unknown path", http.MethodGet, "/nope", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest(tt.method, server.URL+tt.path, nil)
			if err != nil {
				t.Fatalf("NewRequest failed: %v", err)
			}
			resp, err := http.DefaultClient.Do(req)
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
			body, _ := io.ReadAll(resp.Body)
			if !strings.Contains(string(body), tt.wantContains) {
				t.Errorf("body does not contain %q", tt.wantContains)
			}
			if tt.method == http.MethodOptions && resp.Header.Get("Access-Control-Allow-Origin") != "*" {
				t.Error("missing CORS header on preflight")
			}
		})
	}
}
