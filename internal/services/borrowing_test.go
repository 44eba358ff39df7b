package services

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/booklibrary-portal/internal/backend"
	"github.com/yungbote/booklibrary-portal/internal/domain"
)

func newBorrowingServiceAt(t *testing.T, fake *fakeClient, now time.Time) BorrowingService {
	t.Helper()
	return &borrowingService{
		log:    testLogger(t),
		client: fake,
		now:    func() time.Time { return now },
	}
}

func TestCreateInjectsBorrowDateWhenUnset(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)
	fake := newFakeClient()
	fake.stub("POST", "BookBorrowing", backend.Outcome{Status: http.StatusCreated})

	svc := newBorrowingServiceAt(t, fake, now)
	forwarded, err := svc.Create(context.Background(), domain.BookBorrowing{
		BookID: 12,
		Status: domain.StatusBorrowed,
	})
	require.NoError(t, err)
	assert.Equal(t, now, forwarded.BorrowDate)

	sent, ok := fake.lastBody().(domain.BookBorrowing)
	require.True(t, ok)
	assert.Equal(t, 12, sent.BookID)
	assert.Equal(t, now, sent.BorrowDate)
	assert.Equal(t, domain.StatusBorrowed, sent.Status)
}

func TestCreatePreservesCallerBorrowDate(t *testing.T) {
	supplied := time.Date(2025, 5, 20, 9, 0, 0, 0, time.UTC)
	fake := newFakeClient()
	fake.stub("POST", "BookBorrowing", backend.Outcome{Status: http.StatusCreated})

	svc := newBorrowingServiceAt(t, fake, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	forwarded, err := svc.Create(context.Background(), domain.BookBorrowing{
		BookID:     12,
		BorrowDate: supplied,
		Status:     domain.StatusBorrowed,
	})
	require.NoError(t, err)
	assert.Equal(t, supplied, forwarded.BorrowDate)
}

func TestCreateValidationFailureIssuesNoCall(t *testing.T) {
	fake := newFakeClient()
	svc := NewBorrowingService(testLogger(t), fake)

	longName := strings.Repeat("x", 101)
	_, err := svc.Create(context.Background(), domain.BookBorrowing{
		BookID:       0,
		BorrowerName: longName,
	})
	require.Error(t, err)
	assert.Equal(t, CodeValidationFailed, CodeOf(err))
	assert.Equal(t, 0, fake.callCount())
}

func TestCreateBackendErrorSurfacesBody(t *testing.T) {
	fake := newFakeClient()
	fake.stub("POST", "BookBorrowing", backend.Outcome{Status: http.StatusConflict, Body: []byte("book already borrowed")})

	svc := NewBorrowingService(testLogger(t), fake)
	_, err := svc.Create(context.Background(), domain.BookBorrowing{BookID: 12, Status: domain.StatusBorrowed})
	require.Error(t, err)
	assert.Equal(t, CodeBackendError, CodeOf(err))
	assert.Contains(t, err.Error(), "book already borrowed")
}

func TestEditIdentifierMismatchIssuesNoCall(t *testing.T) {
	fake := newFakeClient()
	svc := NewBorrowingService(testLogger(t), fake)

	err := svc.Edit(context.Background(), 5, domain.BookBorrowing{BookID: 9, Status: domain.StatusBorrowed, BorrowDate: time.Now()})
	require.Error(t, err)
	assert.Equal(t, CodeIdentifierMismatch, CodeOf(err))
	assert.Equal(t, 0, fake.callCount())
}

func TestEditForwardsOnMatch(t *testing.T) {
	fake := newFakeClient()
	fake.stub("PUT", "BookBorrowing/5", backend.Outcome{Status: http.StatusOK})

	svc := NewBorrowingService(testLogger(t), fake)
	err := svc.Edit(context.Background(), 5, domain.BookBorrowing{BookID: 5, Status: domain.StatusBorrowed, BorrowDate: time.Now()})
	require.NoError(t, err)
	assert.Equal(t, 1, fake.callsTo(http.MethodPut, "BookBorrowing/5"))
}

// The return transition carries no local precondition: calling it twice
// issues two independent backend calls and never a status read first.
func TestReturnTwiceIssuesTwoCallsWithoutPrecheck(t *testing.T) {
	fake := newFakeClient()
	fake.stub("PATCH", "BookBorrowing/3/return", backend.Outcome{Status: http.StatusOK})

	svc := NewBorrowingService(testLogger(t), fake)
	require.NoError(t, svc.Return(context.Background(), 3))
	require.NoError(t, svc.Return(context.Background(), 3))

	assert.Equal(t, 2, fake.callsTo(http.MethodPatch, "BookBorrowing/3/return"))
	assert.Equal(t, 2, fake.callCount(), "no GET before the transition")
}

func TestReturnBackendError(t *testing.T) {
	fake := newFakeClient()
	fake.stub("PATCH", "BookBorrowing/3/return", backend.Outcome{Status: http.StatusInternalServerError, Body: []byte("boom")})

	svc := NewBorrowingService(testLogger(t), fake)
	err := svc.Return(context.Background(), 3)
	require.Error(t, err)
	assert.Equal(t, CodeBackendError, CodeOf(err))
}

func TestDeleteOutcomes(t *testing.T) {
	fake := newFakeClient()
	fake.stub("DELETE", "BookBorrowing/4", backend.Outcome{Status: http.StatusNoContent})

	svc := NewBorrowingService(testLogger(t), fake)
	require.NoError(t, svc.Delete(context.Background(), 4))

	fake.stub("DELETE", "BookBorrowing/4", backend.Outcome{Err: errors.New("connection refused")})
	err := svc.Delete(context.Background(), 4)
	require.Error(t, err)
	assert.Equal(t, CodeBackendError, CodeOf(err))
}

func TestIsBorrowedFailsOpen(t *testing.T) {
	cases := map[string]backend.Outcome{
		"backend unreachable": {Err: errors.New("connection refused")},
		"not found":           {Status: http.StatusNotFound, Body: []byte("no record")},
		"malformed payload":   {Status: http.StatusOK, Body: []byte("<html>")},
	}
	for name, out := range cases {
		t.Run(name, func(t *testing.T) {
			fake := newFakeClient()
			fake.stub("GET", "BookBorrowing/8", out)

			svc := NewBorrowingService(testLogger(t), fake)
			assert.False(t, svc.IsBorrowed(context.Background(), 8))
		})
	}
}

func TestIsBorrowedReadsStatus(t *testing.T) {
	fake := newFakeClient()
	fake.stubJSON("GET", "BookBorrowing/8", domain.BookBorrowing{BookID: 8, Status: domain.StatusBorrowed, BorrowDate: time.Now()})

	svc := NewBorrowingService(testLogger(t), fake)
	assert.True(t, svc.IsBorrowed(context.Background(), 8))

	fake.stubJSON("GET", "BookBorrowing/8", domain.BookBorrowing{BookID: 8, Status: domain.StatusReturned, BorrowDate: time.Now()})
	assert.False(t, svc.IsBorrowed(context.Background(), 8))
}
