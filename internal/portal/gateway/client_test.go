package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

func TestGateway(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Gateway Module Suite")
}

type staticTokens struct {
	token string
}

func (s *staticTokens) Token() string { return s.token }

var _ = ginkgo.Describe("AuthTransport", func() {
	var (
		seenAuth   string
		server     *httptest.Server
		tokens     *staticTokens
		httpClient *http.Client
	)

	ginkgo.BeforeEach(func() {
		seenAuth = "unset"
		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seenAuth = r.Header.Get("Authorization")
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{}`))
		}))
		ginkgo.DeferCleanup(server.Close)

		tokens = &staticTokens{}
		httpClient = &http.Client{Transport: &AuthTransport{Tokens: tokens}}
	})

	ginkgo.It("should attach the bearer header when a token is present", func() {
		tokens.token = "abc123"

		resp, err := httpClient.Get(server.URL)
		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		resp.Body.Close()

		gomega.Expect(seenAuth).To(gomega.Equal("Bearer abc123"))
	})

	ginkgo.It("should leave the request untouched without a token", func() {
		resp, err := httpClient.Get(server.URL)
		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		resp.Body.Close()

		gomega.Expect(seenAuth).To(gomega.BeEmpty())
	})

	ginkgo.It("should not mutate the original request", func() {
		tokens.token = "abc123"

		req, err := http.NewRequest(http.MethodGet, server.URL, nil)
		gomega.Expect(err).ToNot(gomega.HaveOccurred())

		resp, err := httpClient.Do(req)
		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		resp.Body.Close()

		gomega.Expect(req.Header.Get("Authorization")).To(gomega.BeEmpty())
	})
})

var _ = ginkgo.Describe("Client", func() {
	newServer := func(status int, body string) *httptest.Server {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(status)
			w.Write([]byte(body))
		}))
		ginkgo.DeferCleanup(server.Close)
		return server
	}

	ginkgo.It("should decode a structured error envelope", func() {
		server := newServer(404, `{"error":{"type":"NOT_FOUND","code":"DEMANDE_NOT_FOUND","message":"Demande not found"}}`)
		client := NewClient(server.URL, nil, time.Second)

		_, err := NewDemandeGateway(client).Get(context.Background(), 42)

		apiErr, ok := AsAPIError(err)
		gomega.Expect(ok).To(gomega.BeTrue())
		gomega.Expect(apiErr.StatusCode).To(gomega.Equal(404))
		gomega.Expect(apiErr.Code).To(gomega.Equal("DEMANDE_NOT_FOUND"))
		gomega.Expect(apiErr.Message).To(gomega.Equal("Demande not found"))
	})

	ginkgo.It("should decode a flat error body", func() {
		server := newServer(400, `{"code":400,"message":"invalid request body"}`)
		client := NewClient(server.URL, nil, time.Second)

		_, err := NewDemandeGateway(client).List(context.Background())

		apiErr, ok := AsAPIError(err)
		gomega.Expect(ok).To(gomega.BeTrue())
		gomega.Expect(apiErr.Message).To(gomega.Equal("invalid request body"))
	})

	ginkgo.It("should decode a successful payload", func() {
		server := newServer(200, `[{"id":7,"subject":"Colonie de vacances","status":"EN_ATTENTE"}]`)
		client := NewClient(server.URL, nil, time.Second)

		demandes, err := NewDemandeGateway(client).List(context.Background())

		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		gomega.Expect(demandes).To(gomega.HaveLen(1))
		gomega.Expect(demandes[0].ID).To(gomega.Equal(int64(7)))
		gomega.Expect(demandes[0].Status).To(gomega.Equal("EN_ATTENTE"))
	})

	ginkgo.Describe("user error localization", func() {
		ginkgo.It("should translate a conflict", func() {
			server := newServer(409, `{"error":{"code":"USER_ALREADY_EXISTS","message":"A user with this email, CIN or matricule already exists"}}`)
			client := NewClient(server.URL, nil, time.Second)

			_, err := NewUserGateway(client).Register(context.Background(), map[string]string{"email": "x@y.z"})

			apiErr, ok := AsAPIError(err)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(apiErr.Message).To(gomega.Equal("Un utilisateur avec cet email, ce CIN ou ce matricule existe déjà."))
			gomega.Expect(apiErr.Code).To(gomega.Equal("USER_ALREADY_EXISTS"))
		})

		ginkgo.It("should translate a 404", func() {
			server := newServer(404, `{"error":{"code":"USER_NOT_FOUND","message":"User not found"}}`)
			client := NewClient(server.URL, nil, time.Second)

			_, err := NewUserGateway(client).Get(context.Background(), 99)

			apiErr, _ := AsAPIError(err)
			gomega.Expect(apiErr.Message).To(gomega.Equal("Utilisateur introuvable."))
		})

		ginkgo.It("should keep the server's message on a 400", func() {
			server := newServer(400, `{"error":{"code":"VALIDATION_FAILED","message":"email is required"}}`)
			client := NewClient(server.URL, nil, time.Second)

			_, err := NewUserGateway(client).Register(context.Background(), map[string]string{})

			apiErr, _ := AsAPIError(err)
			gomega.Expect(apiErr.Message).To(gomega.Equal("email is required"))
		})

		ginkgo.It("should not translate non-user endpoints", func() {
			server := newServer(404, `{"error":{"code":"DEMANDE_NOT_FOUND","message":"Demande not found"}}`)
			client := NewClient(server.URL, nil, time.Second)

			_, err := NewDemandeGateway(client).Get(context.Background(), 1)

			apiErr, _ := AsAPIError(err)
			gomega.Expect(apiErr.Message).To(gomega.Equal("Demande not found"))
		})
	})
})
