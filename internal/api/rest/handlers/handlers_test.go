package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-resty/resty/v2"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/danilovkiri/dk_go_shortlinks/internal/api/rest/middleware"
	"github.com/danilovkiri/dk_go_shortlinks/internal/api/rest/modeldto"
	"github.com/danilovkiri/dk_go_shortlinks/internal/mocks"
	serviceErrors "github.com/danilovkiri/dk_go_shortlinks/internal/service/errors"
	"github.com/danilovkiri/dk_go_shortlinks/internal/service/modellink"
	shortenerV1 "github.com/danilovkiri/dk_go_shortlinks/internal/service/shortener/v1"
	storageErrors "github.com/danilovkiri/dk_go_shortlinks/internal/storage/errors"
)

type HandlersTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	processor *mocks.MockProcessor
	recorder  *mocks.MockRecorder
	ts        *httptest.Server
	client    *resty.Client
}

func (suite *HandlersTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.processor = mocks.NewMockProcessor(suite.ctrl)
	suite.recorder = mocks.NewMockRecorder(suite.ctrl)
	urlHandler, err := InitURLHandler(suite.processor, suite.recorder)
	suite.Require().NoError(err)

	r := chi.NewRouter()
	r.Use(middleware.OwnerHandle)
	r.Post("/api/shorten", urlHandler.HandleShorten())
	r.Get("/api/urls", urlHandler.HandleList())
	r.Delete("/api/urls/{code}", urlHandler.HandleDelete())
	r.Get("/s/{code}", urlHandler.HandleInfo())
	r.Get("/health", urlHandler.HandleHealth())
	r.Get("/ping", urlHandler.HandlePingDB())
	r.Get("/{code}", urlHandler.HandleRedirect())
	suite.ts = httptest.NewServer(r)

	suite.client = resty.New().SetRedirectPolicy(resty.RedirectPolicyFunc(func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}))
}

func (suite *HandlersTestSuite) TearDownTest() {
	suite.ts.Close()
	suite.ctrl.Finish()
}

func TestHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}

func strPtr(s string) *string {
	return &s
}

func TestInitURLHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	_, err := InitURLHandler(nil, mocks.NewMockRecorder(ctrl))
	assert.Error(t, err)
	_, err = InitURLHandler(mocks.NewMockProcessor(ctrl), nil)
	assert.Error(t, err)
}

func (suite *HandlersTestSuite) TestHandleShorten() {
	created := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)
	suite.processor.EXPECT().Shorten(gomock.Any(), "https://example.com", strPtr("alice")).Return(modellink.ShortLink{
		ID:        3,
		Code:      "abcDEF1",
		URL:       "https://example.com",
		OwnerID:   strPtr("alice"),
		CreatedAt: created,
	}, nil)
	suite.recorder.EXPECT().ObserveLatency(gomock.Any())
	suite.recorder.EXPECT().IncCreated()

	var resp modeldto.ResponseLink
	res, err := suite.client.R().
		SetHeader("Content-Type", "application/json").
		SetHeader(middleware.OwnerHeader, "alice").
		SetBody(`{"url":"https://example.com"}`).
		SetResult(&resp).
		Post(suite.ts.URL + "/api/shorten")
	suite.Require().NoError(err)
	suite.Equal(http.StatusOK, res.StatusCode())
	suite.Equal(int64(3), resp.ID)
	suite.Equal("abcDEF1", resp.Code)
	suite.Equal(suite.ts.URL+"/abcDEF1", resp.ShortURL)
	suite.Require().NotNil(resp.OwnerID)
	suite.Equal("alice", *resp.OwnerID)
	suite.True(created.Equal(resp.CreatedAt))
}

func (suite *HandlersTestSuite) TestHandleShorten_ForwardedProto() {
	suite.processor.EXPECT().Shorten(gomock.Any(), "https://example.com", nil).
		Return(modellink.ShortLink{Code: "abcDEF1", URL: "https://example.com"}, nil)
	suite.recorder.EXPECT().ObserveLatency(gomock.Any())
	suite.recorder.EXPECT().IncCreated()

	var resp modeldto.ResponseLink
	_, err := suite.client.R().
		SetHeader("X-Forwarded-Proto", "https").
		SetBody(`{"url":"https://example.com"}`).
		SetResult(&resp).
		Post(suite.ts.URL + "/api/shorten")
	suite.Require().NoError(err)
	suite.True(strings.HasPrefix(resp.ShortURL, "https://"))
	suite.Nil(resp.OwnerID)
}

func (suite *HandlersTestSuite) TestHandleShorten_BadRequest() {
	tests := []struct {
		name string
		body string
		call bool
	}{
		{name: "Malformed JSON", body: "{", call: false},
		{name: "Non-string url", body: `{"url":5}`, call: false},
		{name: "Invalid url", body: `{"url":"ftp://example.com"}`, call: true},
	}
	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			if tt.call {
				suite.processor.EXPECT().Shorten(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(modellink.ShortLink{}, &serviceErrors.ValidationError{Msg: shortenerV1.MsgInvalidURL})
			}
			suite.recorder.EXPECT().ObserveLatency(gomock.Any())

			var resp modeldto.ResponseError
			res, err := suite.client.R().SetBody(tt.body).SetError(&resp).Post(suite.ts.URL + "/api/shorten")
			require.NoError(t, err)
			assert.Equal(t, http.StatusBadRequest, res.StatusCode())
			assert.Equal(t, shortenerV1.MsgInvalidURL, resp.Error)
		})
	}
}

func (suite *HandlersTestSuite) TestHandleShorten_StorageFail() {
	suite.processor.EXPECT().Shorten(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(modellink.ShortLink{}, &storageErrors.AlreadyExistsError{Code: "abcDEF1"})
	suite.recorder.EXPECT().ObserveLatency(gomock.Any())

	var resp modeldto.ResponseError
	res, err := suite.client.R().SetBody(`{"url":"https://example.com"}`).SetError(&resp).Post(suite.ts.URL + "/api/shorten")
	suite.Require().NoError(err)
	suite.Equal(http.StatusInternalServerError, res.StatusCode())
	suite.Equal(MsgDatabaseError, resp.Error)
}

func (suite *HandlersTestSuite) TestHandleList() {
	suite.processor.EXPECT().List(gomock.Any(), "alice", true).Return([]modellink.ShortLink{
		{ID: 2, Code: "second1", URL: "https://two.example", OwnerID: strPtr("alice")},
		{ID: 1, Code: "first01", URL: "https://one.example", OwnerID: strPtr("alice")},
	}, nil)

	var resp []modeldto.ResponseLink
	res, err := suite.client.R().
		SetHeader(middleware.OwnerHeader, "alice").
		SetQueryParam("mine", "true").
		SetResult(&resp).
		Get(suite.ts.URL + "/api/urls")
	suite.Require().NoError(err)
	suite.Equal(http.StatusOK, res.StatusCode())
	suite.Require().Len(resp, 2)
	suite.Equal("second1", resp[0].Code)
	suite.Equal(suite.ts.URL+"/first01", resp[1].ShortURL)
}

func (suite *HandlersTestSuite) TestHandleList_Empty() {
	suite.processor.EXPECT().List(gomock.Any(), "", false).Return(nil, nil)

	res, err := suite.client.R().Get(suite.ts.URL + "/api/urls")
	suite.Require().NoError(err)
	suite.Equal(http.StatusOK, res.StatusCode())
	suite.Equal("[]", string(res.Body()))
}

func (suite *HandlersTestSuite) TestHandleList_Errors() {
	suite.processor.EXPECT().List(gomock.Any(), "", true).
		Return(nil, &serviceErrors.ValidationError{Msg: shortenerV1.MsgOwnerRequired})
	var resp modeldto.ResponseError
	res, err := suite.client.R().SetQueryParam("mine", "true").SetError(&resp).Get(suite.ts.URL + "/api/urls")
	suite.Require().NoError(err)
	suite.Equal(http.StatusBadRequest, res.StatusCode())
	suite.Equal(shortenerV1.MsgOwnerRequired, resp.Error)

	suite.processor.EXPECT().List(gomock.Any(), "", false).Return(nil, errors.New("generic error"))
	resp = modeldto.ResponseError{}
	res, err = suite.client.R().SetError(&resp).Get(suite.ts.URL + "/api/urls")
	suite.Require().NoError(err)
	suite.Equal(http.StatusInternalServerError, res.StatusCode())
	suite.Equal(MsgDBError, resp.Error)
}

func (suite *HandlersTestSuite) TestHandleDelete() {
	tests := []struct {
		name       string
		err        error
		statusCode int
		message    string
	}{
		{name: "Deleted", err: nil, statusCode: http.StatusOK},
		{name: "Not found", err: &serviceErrors.NotFoundError{Code: "abcDEF1"}, statusCode: http.StatusNotFound, message: MsgNotFound},
		{name: "Global", err: &serviceErrors.ForbiddenError{Msg: shortenerV1.MsgGlobalProtected}, statusCode: http.StatusForbidden, message: shortenerV1.MsgGlobalProtected},
		{name: "Foreign", err: &serviceErrors.ForbiddenError{Msg: shortenerV1.MsgNotAllowed}, statusCode: http.StatusForbidden, message: shortenerV1.MsgNotAllowed},
		{name: "Storage", err: errors.New("generic error"), statusCode: http.StatusInternalServerError, message: MsgDBError},
	}
	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			suite.processor.EXPECT().Delete(gomock.Any(), "abcDEF1", "alice").Return(tt.err)
			var (
				ok      modeldto.ResponseDeleted
				failure modeldto.ResponseError
			)
			res, err := suite.client.R().
				SetHeader(middleware.OwnerHeader, "alice").
				SetResult(&ok).
				SetError(&failure).
				Delete(suite.ts.URL + "/api/urls/abcDEF1")
			require.NoError(t, err)
			assert.Equal(t, tt.statusCode, res.StatusCode())
			if tt.err == nil {
				assert.True(t, ok.Deleted)
				return
			}
			assert.Equal(t, tt.message, failure.Error)
		})
	}
}

func (suite *HandlersTestSuite) TestHandleInfo() {
	suite.processor.EXPECT().Lookup(gomock.Any(), "abcDEF1").Return(modellink.ShortLink{
		Code:      "abcDEF1",
		URL:       `https://example.com/?q="<b>"`,
		CreatedAt: time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC),
	}, nil)

	res, err := suite.client.R().Get(suite.ts.URL + "/s/abcDEF1")
	suite.Require().NoError(err)
	suite.Equal(http.StatusOK, res.StatusCode())
	body := string(res.Body())
	suite.Contains(body, "Created at: 2024-05-06 07:08:09")
	suite.NotContains(body, "<b>")
	suite.Contains(body, "Visit Original")
}

func (suite *HandlersTestSuite) TestHandleInfo_Errors() {
	suite.processor.EXPECT().Lookup(gomock.Any(), "missing").
		Return(modellink.ShortLink{}, &serviceErrors.NotFoundError{Code: "missing"})
	res, err := suite.client.R().Get(suite.ts.URL + "/s/missing")
	suite.Require().NoError(err)
	suite.Equal(http.StatusNotFound, res.StatusCode())
	suite.Equal(TextNotFound, string(res.Body()))

	suite.processor.EXPECT().Lookup(gomock.Any(), "broken1").Return(modellink.ShortLink{}, errors.New("generic error"))
	res, err = suite.client.R().Get(suite.ts.URL + "/s/broken1")
	suite.Require().NoError(err)
	suite.Equal(http.StatusInternalServerError, res.StatusCode())
	suite.Equal(TextServerError, string(res.Body()))
}

func (suite *HandlersTestSuite) TestHandleRedirect() {
	suite.processor.EXPECT().Resolve(gomock.Any(), "abcDEF1").
		Return(modellink.ShortLink{Code: "abcDEF1", URL: "https://example.com/target"}, nil)
	suite.recorder.EXPECT().ObserveLatency(gomock.Any())
	suite.recorder.EXPECT().IncRedirect()

	res, err := suite.client.R().Get(suite.ts.URL + "/abcDEF1")
	suite.Require().NoError(err)
	suite.Equal(http.StatusFound, res.StatusCode())
	suite.Equal("https://example.com/target", res.Header().Get("Location"))
}

func (suite *HandlersTestSuite) TestHandleRedirect_NotFound() {
	suite.processor.EXPECT().Resolve(gomock.Any(), "missing").
		Return(modellink.ShortLink{}, &serviceErrors.NotFoundError{Code: "missing"})
	suite.recorder.EXPECT().ObserveLatency(gomock.Any())
	suite.recorder.EXPECT().IncNotFound()

	res, err := suite.client.R().Get(suite.ts.URL + "/missing")
	suite.Require().NoError(err)
	suite.Equal(http.StatusNotFound, res.StatusCode())
	suite.Equal(TextNotFound, string(res.Body()))
}

func (suite *HandlersTestSuite) TestHandleRedirect_StorageFail() {
	suite.processor.EXPECT().Resolve(gomock.Any(), "abcDEF1").
		Return(modellink.ShortLink{}, &storageErrors.ContextTimeoutExceededError{Err: errors.New("deadline")})
	suite.recorder.EXPECT().ObserveLatency(gomock.Any())

	res, err := suite.client.R().Get(suite.ts.URL + "/abcDEF1")
	suite.Require().NoError(err)
	suite.Equal(http.StatusInternalServerError, res.StatusCode())
	suite.Equal(TextServerError, string(res.Body()))
}

func (suite *HandlersTestSuite) TestHandleRedirect_Reserved() {
	// no processor or recorder calls are expected for reserved words
	for _, code := range []string{"api", "s", "public"} {
		res, err := suite.client.R().Get(suite.ts.URL + "/" + code)
		suite.Require().NoError(err)
		suite.Equal(http.StatusNotFound, res.StatusCode())
		suite.Equal(TextNotFound, string(res.Body()))
	}
}

func (suite *HandlersTestSuite) TestHandleHealth() {
	var resp modeldto.ResponseHealth
	res, err := suite.client.R().SetResult(&resp).Get(suite.ts.URL + "/health")
	suite.Require().NoError(err)
	suite.Equal(http.StatusOK, res.StatusCode())
	suite.Equal("ok", resp.Status)
}

func (suite *HandlersTestSuite) TestHandlePingDB() {
	suite.processor.EXPECT().PingDB(gomock.Any()).Return(nil)
	res, err := suite.client.R().Get(suite.ts.URL + "/ping")
	suite.Require().NoError(err)
	suite.Equal(http.StatusOK, res.StatusCode())

	suite.processor.EXPECT().PingDB(gomock.Any()).Return(errors.New("connection refused"))
	res, err = suite.client.R().Get(suite.ts.URL + "/ping")
	suite.Require().NoError(err)
	suite.Equal(http.StatusInternalServerError, res.StatusCode())
}
