package iiko

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoginLogout(t *testing.T) {
	logouts := 0

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, rq *http.Request) {
		switch rq.URL.Path {
		case "/auth":
			assert.Equal(t, "api_reader", rq.URL.Query().Get("login"))
			assert.Equal(t, "qwerty", rq.URL.Query().Get("pass"))
			fmt.Fprintf(w, "21a265c3-d8b2-4f6f-9e2a-33b0a3a0e2f1")

		case "/logout":
			assert.Equal(t, "21a265c3-d8b2-4f6f-9e2a-33b0a3a0e2f1", rq.URL.Query().Get("key"))
			logouts++
			fmt.Fprintf(w, "true")

		default:
			http.NotFound(w, rq)
		}
	}))

	defer server.Close()

	client := NewClient(server.URL, "api_reader", "qwerty")

	token, err := client.Login(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "21a265c3-d8b2-4f6f-9e2a-33b0a3a0e2f1", token)

	assert.NoError(t, client.Logout(context.Background(), token))
	assert.Equal(t, 1, logouts)
}

func TestLoginRejectsErrorBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, rq *http.Request) {
		fmt.Fprintf(w, "wrong login or password")
	}))

	defer server.Close()

	client := NewClient(server.URL, "api_reader", "qwerty")

	_, err := client.Login(context.Background())
	assert.Error(t, err)
}

func TestLoginRejectsErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, rq *http.Request) {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
	}))

	defer server.Close()

	client := NewClient(server.URL, "api_reader", "hunter2")

	_, err := client.Login(context.Background())
	assert.Error(t, err)
}

func TestSessionLogsOutAfterUse(t *testing.T) {
	logouts := 0

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, rq *http.Request) {
		switch rq.URL.Path {
		case "/auth":
			fmt.Fprintf(w, "deadbeef")

		case "/logout":
			assert.Equal(t, "deadbeef", rq.URL.Query().Get("key"))
			logouts++
			fmt.Fprintf(w, "true")
		}
	}))

	defer server.Close()

	client := NewClient(server.URL, "api_reader", "qwerty")

	err := client.Session(context.Background(), func(token string) error {
		assert.Equal(t, "deadbeef", token)
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, logouts)
}

func TestSessionLogsOutOnError(t *testing.T) {
	logouts := 0

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, rq *http.Request) {
		switch rq.URL.Path {
		case "/auth":
			fmt.Fprintf(w, "deadbeef")

		case "/logout":
			logouts++
			fmt.Fprintf(w, "true")
		}
	}))

	defer server.Close()

	client := NewClient(server.URL, "api_reader", "qwerty")

	err := client.Session(context.Background(), func(token string) error {
		return fmt.Errorf("fetch exploded")
	})

	assert.EqualError(t, err, "fetch exploded")
	assert.Equal(t, 1, logouts)
}

func TestSessionWithoutLoginDoesNotLogout(t *testing.T) {
	logouts := 0

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, rq *http.Request) {
		switch rq.URL.Path {
		case "/auth":
			http.Error(w, "Unauthorized", http.StatusUnauthorized)

		case "/logout":
			logouts++
		}
	}))

	defer server.Close()

	client := NewClient(server.URL, "api_reader", "qwerty")

	invoked := false
	err := client.Session(context.Background(), func(token string) error {
		invoked = true
		return nil
	})

	assert.Error(t, err)
	assert.False(t, invoked)
	assert.Equal(t, 0, logouts)
}
