package apiconnect

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/abdoachhoubi/billsplitter/pkg/api"
)

// Package name of every service.
const packageName = "billsplitter.v1"

// Fully-qualified service names.
const (
	AuthServiceName    = packageName + ".AuthService"
	BillServiceName    = packageName + ".BillService"
	ContactServiceName = packageName + ".ContactService"
)

// Procedure paths, in the form "/billsplitter.v1.Service/Method".
const (
	AuthServiceRegisterProcedure                = "/" + AuthServiceName + "/Register"
	AuthServiceLoginProcedure                   = "/" + AuthServiceName + "/Login"
	AuthServiceGetCurrentUserProcedure          = "/" + AuthServiceName + "/GetCurrentUser"
	BillServicePreviewSplitProcedure            = "/" + BillServiceName + "/PreviewSplit"
	BillServiceCreateBillProcedure              = "/" + BillServiceName + "/CreateBill"
	BillServiceGetBillProcedure                 = "/" + BillServiceName + "/GetBill"
	BillServiceUpdateBillProcedure              = "/" + BillServiceName + "/UpdateBill"
	BillServiceUpdateBillStatusProcedure        = "/" + BillServiceName + "/UpdateBillStatus"
	BillServiceDeleteBillProcedure              = "/" + BillServiceName + "/DeleteBill"
	BillServiceListBillsProcedure               = "/" + BillServiceName + "/ListBills"
	BillServiceSuggestSettlementsProcedure      = "/" + BillServiceName + "/SuggestSettlements"
	ContactServiceCreateContactProcedure        = "/" + ContactServiceName + "/CreateContact"
	ContactServiceGetContactProcedure           = "/" + ContactServiceName + "/GetContact"
	ContactServiceUpdateContactProcedure        = "/" + ContactServiceName + "/UpdateContact"
	ContactServiceDeleteContactProcedure        = "/" + ContactServiceName + "/DeleteContact"
	ContactServiceListContactsProcedure         = "/" + ContactServiceName + "/ListContacts"
	ContactServiceGetContactStatsProcedure      = "/" + ContactServiceName + "/GetContactStats"
	ContactServiceGetContactHistoryProcedure    = "/" + ContactServiceName + "/GetContactHistory"
	ContactServiceExportContactHistoryProcedure = "/" + ContactServiceName + "/ExportContactHistory"
)

// ===== AuthService =====

// AuthServiceHandler is implemented by the server side of the AuthService.
type AuthServiceHandler interface {
	Register(context.Context, *connect.Request[api.RegisterRequest]) (*connect.Response[api.RegisterResponse], error)
	Login(context.Context, *connect.Request[api.LoginRequest]) (*connect.Response[api.LoginResponse], error)
	GetCurrentUser(context.Context, *connect.Request[api.GetCurrentUserRequest]) (*connect.Response[api.GetCurrentUserResponse], error)
}

// NewAuthServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewAuthServiceHandler(svc AuthServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(Codec{})}, opts...)

	register := connect.NewUnaryHandler(AuthServiceRegisterProcedure, svc.Register, opts...)
	login := connect.NewUnaryHandler(AuthServiceLoginProcedure, svc.Login, opts...)
	getCurrentUser := connect.NewUnaryHandler(AuthServiceGetCurrentUserProcedure, svc.GetCurrentUser, opts...)

	return "/" + AuthServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case AuthServiceRegisterProcedure:
			register.ServeHTTP(w, r)
		case AuthServiceLoginProcedure:
			login.ServeHTTP(w, r)
		case AuthServiceGetCurrentUserProcedure:
			getCurrentUser.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// AuthServiceClient is a client for the AuthService.
type AuthServiceClient interface {
	Register(context.Context, *connect.Request[api.RegisterRequest]) (*connect.Response[api.RegisterResponse], error)
	Login(context.Context, *connect.Request[api.LoginRequest]) (*connect.Response[api.LoginResponse], error)
	GetCurrentUser(context.Context, *connect.Request[api.GetCurrentUserRequest]) (*connect.Response[api.GetCurrentUserResponse], error)
}

// NewAuthServiceClient constructs a client for the AuthService at baseURL
// (for example, http://localhost:8080).
func NewAuthServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) AuthServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(Codec{})}, opts...)
	return &authServiceClient{
		register:       connect.NewClient[api.RegisterRequest, api.RegisterResponse](httpClient, baseURL+AuthServiceRegisterProcedure, opts...),
		login:          connect.NewClient[api.LoginRequest, api.LoginResponse](httpClient, baseURL+AuthServiceLoginProcedure, opts...),
		getCurrentUser: connect.NewClient[api.GetCurrentUserRequest, api.GetCurrentUserResponse](httpClient, baseURL+AuthServiceGetCurrentUserProcedure, opts...),
	}
}

type authServiceClient struct {
	register       *connect.Client[api.RegisterRequest, api.RegisterResponse]
	login          *connect.Client[api.LoginRequest, api.LoginResponse]
	getCurrentUser *connect.Client[api.GetCurrentUserRequest, api.GetCurrentUserResponse]
}

func (c *authServiceClient) Register(ctx context.Context, req *connect.Request[api.RegisterRequest]) (*connect.Response[api.RegisterResponse], error) {
	return c.register.CallUnary(ctx, req)
}

func (c *authServiceClient) Login(ctx context.Context, req *connect.Request[api.LoginRequest]) (*connect.Response[api.LoginResponse], error) {
	return c.login.CallUnary(ctx, req)
}

func (c *authServiceClient) GetCurrentUser(ctx context.Context, req *connect.Request[api.GetCurrentUserRequest]) (*connect.Response[api.GetCurrentUserResponse], error) {
	return c.getCurrentUser.CallUnary(ctx, req)
}

// ===== BillService =====

// BillServiceHandler is implemented by the server side of the BillService.
type BillServiceHandler interface {
	PreviewSplit(context.Context, *connect.Request[api.PreviewSplitRequest]) (*connect.Response[api.PreviewSplitResponse], error)
	CreateBill(context.Context, *connect.Request[api.CreateBillRequest]) (*connect.Response[api.CreateBillResponse], error)
	GetBill(context.Context, *connect.Request[api.GetBillRequest]) (*connect.Response[api.GetBillResponse], error)
	UpdateBill(context.Context, *connect.Request[api.UpdateBillRequest]) (*connect.Response[api.UpdateBillResponse], error)
	UpdateBillStatus(context.Context, *connect.Request[api.UpdateBillStatusRequest]) (*connect.Response[api.UpdateBillStatusResponse], error)
	DeleteBill(context.Context, *connect.Request[api.DeleteBillRequest]) (*connect.Response[api.DeleteBillResponse], error)
	ListBills(context.Context, *connect.Request[api.ListBillsRequest]) (*connect.Response[api.ListBillsResponse], error)
	SuggestSettlements(context.Context, *connect.Request[api.SuggestSettlementsRequest]) (*connect.Response[api.SuggestSettlementsResponse], error)
}

// NewBillServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewBillServiceHandler(svc BillServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(Codec{})}, opts...)

	previewSplit := connect.NewUnaryHandler(BillServicePreviewSplitProcedure, svc.PreviewSplit, opts...)
	createBill := connect.NewUnaryHandler(BillServiceCreateBillProcedure, svc.CreateBill, opts...)
	getBill := connect.NewUnaryHandler(BillServiceGetBillProcedure, svc.GetBill, opts...)
	updateBill := connect.NewUnaryHandler(BillServiceUpdateBillProcedure, svc.UpdateBill, opts...)
	updateBillStatus := connect.NewUnaryHandler(BillServiceUpdateBillStatusProcedure, svc.UpdateBillStatus, opts...)
	deleteBill := connect.NewUnaryHandler(BillServiceDeleteBillProcedure, svc.DeleteBill, opts...)
	listBills := connect.NewUnaryHandler(BillServiceListBillsProcedure, svc.ListBills, opts...)
	suggestSettlements := connect.NewUnaryHandler(BillServiceSuggestSettlementsProcedure, svc.SuggestSettlements, opts...)

	return "/" + BillServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case BillServicePreviewSplitProcedure:
			previewSplit.ServeHTTP(w, r)
		case BillServiceCreateBillProcedure:
			createBill.ServeHTTP(w, r)
		case BillServiceGetBillProcedure:
			getBill.ServeHTTP(w, r)
		case BillServiceUpdateBillProcedure:
			updateBill.ServeHTTP(w, r)
		case BillServiceUpdateBillStatusProcedure:
			updateBillStatus.ServeHTTP(w, r)
		case BillServiceDeleteBillProcedure:
			deleteBill.ServeHTTP(w, r)
		case BillServiceListBillsProcedure:
			listBills.ServeHTTP(w, r)
		case BillServiceSuggestSettlementsProcedure:
			suggestSettlements.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// BillServiceClient is a client for the BillService.
type BillServiceClient interface {
	PreviewSplit(context.Context, *connect.Request[api.PreviewSplitRequest]) (*connect.Response[api.PreviewSplitResponse], error)
	CreateBill(context.Context, *connect.Request[api.CreateBillRequest]) (*connect.Response[api.CreateBillResponse], error)
	GetBill(context.Context, *connect.Request[api.GetBillRequest]) (*connect.Response[api.GetBillResponse], error)
	UpdateBill(context.Context, *connect.Request[api.UpdateBillRequest]) (*connect.Response[api.UpdateBillResponse], error)
	UpdateBillStatus(context.Context, *connect.Request[api.UpdateBillStatusRequest]) (*connect.Response[api.UpdateBillStatusResponse], error)
	DeleteBill(context.Context, *connect.Request[api.DeleteBillRequest]) (*connect.Response[api.DeleteBillResponse], error)
	ListBills(context.Context, *connect.Request[api.ListBillsRequest]) (*connect.Response[api.ListBillsResponse], error)
	SuggestSettlements(context.Context, *connect.Request[api.SuggestSettlementsRequest]) (*connect.Response[api.SuggestSettlementsResponse], error)
}

// NewBillServiceClient constructs a client for the BillService at baseURL
// (for example, http://localhost:8080).
func NewBillServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) BillServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(Codec{})}, opts...)
	return &billServiceClient{
		previewSplit:       connect.NewClient[api.PreviewSplitRequest, api.PreviewSplitResponse](httpClient, baseURL+BillServicePreviewSplitProcedure, opts...),
		createBill:         connect.NewClient[api.CreateBillRequest, api.CreateBillResponse](httpClient, baseURL+BillServiceCreateBillProcedure, opts...),
		getBill:            connect.NewClient[api.GetBillRequest, api.GetBillResponse](httpClient, baseURL+BillServiceGetBillProcedure, opts...),
		updateBill:         connect.NewClient[api.UpdateBillRequest, api.UpdateBillResponse](httpClient, baseURL+BillServiceUpdateBillProcedure, opts...),
		updateBillStatus:   connect.NewClient[api.UpdateBillStatusRequest, api.UpdateBillStatusResponse](httpClient, baseURL+BillServiceUpdateBillStatusProcedure, opts...),
		deleteBill:         connect.NewClient[api.DeleteBillRequest, api.DeleteBillResponse](httpClient, baseURL+BillServiceDeleteBillProcedure, opts...),
		listBills:          connect.NewClient[api.ListBillsRequest, api.ListBillsResponse](httpClient, baseURL+BillServiceListBillsProcedure, opts...),
		suggestSettlements: connect.NewClient[api.SuggestSettlementsRequest, api.SuggestSettlementsResponse](httpClient, baseURL+BillServiceSuggestSettlementsProcedure, opts...),
	}
}

type billServiceClient struct {
	previewSplit       *connect.Client[api.PreviewSplitRequest, api.PreviewSplitResponse]
	createBill         *connect.Client[api.CreateBillRequest, api.CreateBillResponse]
	getBill            *connect.Client[api.GetBillRequest, api.GetBillResponse]
	updateBill         *connect.Client[api.UpdateBillRequest, api.UpdateBillResponse]
	updateBillStatus   *connect.Client[api.UpdateBillStatusRequest, api.UpdateBillStatusResponse]
	deleteBill         *connect.Client[api.DeleteBillRequest, api.DeleteBillResponse]
	listBills          *connect.Client[api.ListBillsRequest, api.ListBillsResponse]
	suggestSettlements *connect.Client[api.SuggestSettlementsRequest, api.SuggestSettlementsResponse]
}

func (c *billServiceClient) PreviewSplit(ctx context.Context, req *connect.Request[api.PreviewSplitRequest]) (*connect.Response[api.PreviewSplitResponse], error) {
	return c.previewSplit.CallUnary(ctx, req)
}

func (c *billServiceClient) CreateBill(ctx context.Context, req *connect.Request[api.CreateBillRequest]) (*connect.Response[api.CreateBillResponse], error) {
	return c.createBill.CallUnary(ctx, req)
}

func (c *billServiceClient) GetBill(ctx context.Context, req *connect.Request[api.GetBillRequest]) (*connect.Response[api.GetBillResponse], error) {
	return c.getBill.CallUnary(ctx, req)
}

func (c *billServiceClient) UpdateBill(ctx context.Context, req *connect.Request[api.UpdateBillRequest]) (*connect.Response[api.UpdateBillResponse], error) {
	return c.updateBill.CallUnary(ctx, req)
}

func (c *billServiceClient) UpdateBillStatus(ctx context.Context, req *connect.Request[api.UpdateBillStatusRequest]) (*connect.Response[api.UpdateBillStatusResponse], error) {
	return c.updateBillStatus.CallUnary(ctx, req)
}

func (c *billServiceClient) DeleteBill(ctx context.Context, req *connect.Request[api.DeleteBillRequest]) (*connect.Response[api.DeleteBillResponse], error) {
	return c.deleteBill.CallUnary(ctx, req)
}

func (c *billServiceClient) ListBills(ctx context.Context, req *connect.Request[api.ListBillsRequest]) (*connect.Response[api.ListBillsResponse], error) {
	return c.listBills.CallUnary(ctx, req)
}

func (c *billServiceClient) SuggestSettlements(ctx context.Context, req *connect.Request[api.SuggestSettlementsRequest]) (*connect.Response[api.SuggestSettlementsResponse], error) {
	return c.suggestSettlements.CallUnary(ctx, req)
}

// ===== ContactService =====

// ContactServiceHandler is implemented by the server side of the ContactService.
type ContactServiceHandler interface {
	CreateContact(context.Context, *connect.Request[api.CreateContactRequest]) (*connect.Response[api.CreateContactResponse], error)
	GetContact(context.Context, *connect.Request[api.GetContactRequest]) (*connect.Response[api.GetContactResponse], error)
	UpdateContact(context.Context, *connect.Request[api.UpdateContactRequest]) (*connect.Response[api.UpdateContactResponse], error)
	DeleteContact(context.Context, *connect.Request[api.DeleteContactRequest]) (*connect.Response[api.DeleteContactResponse], error)
	ListContacts(context.Context, *connect.Request[api.ListContactsRequest]) (*connect.Response[api.ListContactsResponse], error)
	GetContactStats(context.Context, *connect.Request[api.GetContactStatsRequest]) (*connect.Response[api.GetContactStatsResponse], error)
	GetContactHistory(context.Context, *connect.Request[api.GetContactHistoryRequest]) (*connect.Response[api.GetContactHistoryResponse], error)
	ExportContactHistory(context.Context, *connect.Request[api.ExportContactHistoryRequest]) (*connect.Response[api.ExportContactHistoryResponse], error)
}

// NewContactServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewContactServiceHandler(svc ContactServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(Codec{})}, opts...)

	createContact := connect.NewUnaryHandler(ContactServiceCreateContactProcedure, svc.CreateContact, opts...)
	getContact := connect.NewUnaryHandler(ContactServiceGetContactProcedure, svc.GetContact, opts...)
	updateContact := connect.NewUnaryHandler(ContactServiceUpdateContactProcedure, svc.UpdateContact, opts...)
	deleteContact := connect.NewUnaryHandler(ContactServiceDeleteContactProcedure, svc.DeleteContact, opts...)
	listContacts := connect.NewUnaryHandler(ContactServiceListContactsProcedure, svc.ListContacts, opts...)
	getContactStats := connect.NewUnaryHandler(ContactServiceGetContactStatsProcedure, svc.GetContactStats, opts...)
	getContactHistory := connect.NewUnaryHandler(ContactServiceGetContactHistoryProcedure, svc.GetContactHistory, opts...)
	exportContactHistory := connect.NewUnaryHandler(ContactServiceExportContactHistoryProcedure, svc.ExportContactHistory, opts...)

	return "/" + ContactServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case ContactServiceCreateContactProcedure:
			createContact.ServeHTTP(w, r)
		case ContactServiceGetContactProcedure:
			getContact.ServeHTTP(w, r)
		case ContactServiceUpdateContactProcedure:
			updateContact.ServeHTTP(w, r)
		case ContactServiceDeleteContactProcedure:
			deleteContact.ServeHTTP(w, r)
		case ContactServiceListContactsProcedure:
			listContacts.ServeHTTP(w, r)
		case ContactServiceGetContactStatsProcedure:
			getContactStats.ServeHTTP(w, r)
		case ContactServiceGetContactHistoryProcedure:
			getContactHistory.ServeHTTP(w, r)
		case ContactServiceExportContactHistoryProcedure:
			exportContactHistory.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// ContactServiceClient is a client for the ContactService.
type ContactServiceClient interface {
	CreateContact(context.Context, *connect.Request[api.CreateContactRequest]) (*connect.Response[api.CreateContactResponse], error)
	GetContact(context.Context, *connect.Request[api.GetContactRequest]) (*connect.Response[api.GetContactResponse], error)
	UpdateContact(context.Context, *connect.Request[api.UpdateContactRequest]) (*connect.Response[api.UpdateContactResponse], error)
	DeleteContact(context.Context, *connect.Request[api.DeleteContactRequest]) (*connect.Response[api.DeleteContactResponse], error)
	ListContacts(context.Context, *connect.Request[api.ListContactsRequest]) (*connect.Response[api.ListContactsResponse], error)
	GetContactStats(context.Context, *connect.Request[api.GetContactStatsRequest]) (*connect.Response[api.GetContactStatsResponse], error)
	GetContactHistory(context.Context, *connect.Request[api.GetContactHistoryRequest]) (*connect.Response[api.GetContactHistoryResponse], error)
	ExportContactHistory(context.Context, *connect.Request[api.ExportContactHistoryRequest]) (*connect.Response[api.ExportContactHistoryResponse], error)
}

// NewContactServiceClient constructs a client for the ContactService at baseURL
// (for example, http://localhost:8080).
func NewContactServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) ContactServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(Codec{})}, opts...)
	return &contactServiceClient{
		createContact:        connect.NewClient[api.CreateContactRequest, api.CreateContactResponse](httpClient, baseURL+ContactServiceCreateContactProcedure, opts...),
		getContact:           connect.NewClient[api.GetContactRequest, api.GetContactResponse](httpClient, baseURL+ContactServiceGetContactProcedure, opts...),
		updateContact:        connect.NewClient[api.UpdateContactRequest, api.UpdateContactResponse](httpClient, baseURL+ContactServiceUpdateContactProcedure, opts...),
		deleteContact:        connect.NewClient[api.DeleteContactRequest, api.DeleteContactResponse](httpClient, baseURL+ContactServiceDeleteContactProcedure, opts...),
		listContacts:         connect.NewClient[api.ListContactsRequest, api.ListContactsResponse](httpClient, baseURL+ContactServiceListContactsProcedure, opts...),
		getContactStats:      connect.NewClient[api.GetContactStatsRequest, api.GetContactStatsResponse](httpClient, baseURL+ContactServiceGetContactStatsProcedure, opts...),
		getContactHistory:    connect.NewClient[api.GetContactHistoryRequest, api.GetContactHistoryResponse](httpClient, baseURL+ContactServiceGetContactHistoryProcedure, opts...),
		exportContactHistory: connect.NewClient[api.ExportContactHistoryRequest, api.ExportContactHistoryResponse](httpClient, baseURL+ContactServiceExportContactHistoryProcedure, opts...),
	}
}

type contactServiceClient struct {
	createContact        *connect.Client[api.CreateContactRequest, api.CreateContactResponse]
	getContact           *connect.Client[api.GetContactRequest, api.GetContactResponse]
	updateContact        *connect.Client[api.UpdateContactRequest, api.UpdateContactResponse]
	deleteContact        *connect.Client[api.DeleteContactRequest, api.DeleteContactResponse]
	listContacts         *connect.Client[api.ListContactsRequest, api.ListContactsResponse]
	getContactStats      *connect.Client[api.GetContactStatsRequest, api.GetContactStatsResponse]
	getContactHistory    *connect.Client[api.GetContactHistoryRequest, api.GetContactHistoryResponse]
	exportContactHistory *connect.Client[api.ExportContactHistoryRequest, api.ExportContactHistoryResponse]
}

func (c *contactServiceClient) CreateContact(ctx context.Context, req *connect.Request[api.CreateContactRequest]) (*connect.Response[api.CreateContactResponse], error) {
	return c.createContact.CallUnary(ctx, req)
}

func (c *contactServiceClient) GetContact(ctx context.Context, req *connect.Request[api.GetContactRequest]) (*connect.Response[api.GetContactResponse], error) {
	return c.getContact.CallUnary(ctx, req)
}

func (c *contactServiceClient) UpdateContact(ctx context.Context, req *connect.Request[api.UpdateContactRequest]) (*connect.Response[api.UpdateContactResponse], error) {
	return c.updateContact.CallUnary(ctx, req)
}

func (c *contactServiceClient) DeleteContact(ctx context.Context, req *connect.Request[api.DeleteContactRequest]) (*connect.Response[api.DeleteContactResponse], error) {
	return c.deleteContact.CallUnary(ctx, req)
}

func (c *contactServiceClient) ListContacts(ctx context.Context, req *connect.Request[api.ListContactsRequest]) (*connect.Response[api.ListContactsResponse], error) {
	return c.listContacts.CallUnary(ctx, req)
}

func (c *contactServiceClient) GetContactStats(ctx context.Context, req *connect.Request[api.GetContactStatsRequest]) (*connect.Response[api.GetContactStatsResponse], error) {
	return c.getContactStats.CallUnary(ctx, req)
}

func (c *contactServiceClient) GetContactHistory(ctx context.Context, req *connect.Request[api.GetContactHistoryRequest]) (*connect.Response[api.GetContactHistoryResponse], error) {
	return c.getContactHistory.CallUnary(ctx, req)
}

func (c *contactServiceClient) ExportContactHistory(ctx context.Context, req *connect.Request[api.ExportContactHistoryRequest]) (*connect.Response[api.ExportContactHistoryResponse], error) {
	return c.exportContactHistory.CallUnary(ctx, req)
}
