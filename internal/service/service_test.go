package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"connectrpc.com/connect"

	"github.com/abdoachhoubi/billsplitter/internal/calculator"
	"github.com/abdoachhoubi/billsplitter/internal/middleware"
	"github.com/abdoachhoubi/billsplitter/internal/models"
	"github.com/abdoachhoubi/billsplitter/internal/storage/sqlite"
	"github.com/abdoachhoubi/billsplitter/pkg/api"
	"github.com/abdoachhoubi/billsplitter/pkg/api/apiconnect"
)

// testUserHeader carries the caller's user ID in tests instead of a token.
const testUserHeader = "X-Test-User"

// testAuthInterceptor returns a Connect interceptor that sets the user ID
// from testUserHeader in the context.
func testAuthInterceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if userID := req.Header().Get(testUserHeader); userID != "" {
				ctx = middleware.WithUser(ctx, userID, userID+"@example.com")
			}
			return next(ctx, req)
		}
	}
}

type testEnv struct {
	store    *sqlite.SQLiteStore
	cache    *calculator.StatsCache
	bills    apiconnect.BillServiceClient
	contacts apiconnect.ContactServiceClient
}

// setupTestServer creates a test server backed by a temp SQLite database.
func setupTestServer(t *testing.T) *testEnv {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "billsplitter-service-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := sqlite.New(filepath.Join(tempDir, "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	cache := calculator.NewStatsCache(0)
	opts := DefaultOptions()
	interceptors := connect.WithInterceptors(testAuthInterceptor())

	billPath, billHandler := apiconnect.NewBillServiceHandler(NewBillService(store, opts), interceptors)
	contactPath, contactHandler := apiconnect.NewContactServiceHandler(NewContactService(store, cache, opts), interceptors)

	mux := http.NewServeMux()
	mux.Handle(billPath, billHandler)
	mux.Handle(contactPath, contactHandler)

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return &testEnv{
		store:    store,
		cache:    cache,
		bills:    apiconnect.NewBillServiceClient(http.DefaultClient, server.URL),
		contacts: apiconnect.NewContactServiceClient(http.DefaultClient, server.URL),
	}
}

// asUser builds a request sent by userID.
func asUser[T any](userID string, msg *T) *connect.Request[T] {
	req := connect.NewRequest(msg)
	if userID != "" {
		req.Header().Set(testUserHeader, userID)
	}
	return req
}

func (e *testEnv) newUser(t *testing.T, email, firstName string) *models.User {
	t.Helper()
	user := models.NewUser(email, firstName, "Tester", "hash")
	if err := e.store.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	return user
}

func (e *testEnv) newContact(t *testing.T, ownerID, firstName string) *models.Contact {
	t.Helper()
	resp, err := e.contacts.CreateContact(context.Background(), asUser(ownerID, &api.CreateContactRequest{
		Contact: api.ContactInput{FirstName: firstName, Email: firstName + "@example.com"},
	}))
	if err != nil {
		t.Fatalf("CreateContact failed: %v", err)
	}
	return resp.Msg.Contact
}

func (e *testEnv) createBill(t *testing.T, ownerID string, in api.BillInput) *models.Bill {
	t.Helper()
	resp, err := e.bills.CreateBill(context.Background(), asUser(ownerID, &api.CreateBillRequest{Bill: in}))
	if err != nil {
		t.Fatalf("CreateBill failed: %v", err)
	}
	return resp.Msg.Bill
}

func amountBill(title string, total float64, shares map[string]float64) api.BillInput {
	in := api.BillInput{Title: title, TotalAmount: total, SplitType: models.SplitTypeAmount}
	for id, v := range shares {
		in.Participants = append(in.Participants, api.ParticipantInput{ContactID: id, Split: models.Amount(v)})
	}
	return in
}

func expectCode(t *testing.T, err error, want connect.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %v error, got nil", want)
	}
	if got := connect.CodeOf(err); got != want {
		t.Fatalf("expected code %v, got %v (%v)", want, got, err)
	}
}
