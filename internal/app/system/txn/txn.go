// Package txn runs multi-document MongoDB transactions with a detection
// helper for deployments that cannot support them (standalone servers,
// some DocumentDB versions).
package txn

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"
)

// WithTransaction runs fn inside a session transaction. The callback must
// use the supplied context for every collection operation so the writes
// join the transaction. Callers should check the returned error with
// IsNotSupported and fall back to sequential writes when the deployment
// cannot run transactions.
func WithTransaction(ctx context.Context, client *mongo.Client, fn func(ctx mongo.SessionContext) error) error {
	sess, err := client.StartSession()
	if err != nil {
		return err
	}
	defer sess.EndSession(ctx)

	_, err = sess.WithTransaction(ctx, func(sc mongo.SessionContext) (any, error) {
		return nil, fn(sc)
	})
	return err
}

// Server error codes that indicate transactions are unavailable rather
// than that this particular transaction failed. Code 20 is what a
// standalone server returns ("Transaction numbers are only allowed on a
// replica set member").
const (
	codeIllegalOperation    = 20
	codeCommandNotSupported = 51
	codeOperationNotAllowed = 263
)

// IsNotSupported reports whether err means the server cannot run
// multi-document transactions at all. Matches on known command error codes
// first, then falls back to message sniffing for drivers/proxies that wrap
// the original error.
func IsNotSupported(err error) bool {
	if err == nil {
		return false
	}

	var ce mongo.CommandError
	if errors.As(err, &ce) {
		switch ce.Code {
		case codeIllegalOperation, codeCommandNotSupported, codeOperationNotAllowed:
			return true
		}
		return false
	}

	s := strings.ToLower(err.Error())
	switch {
	case strings.Contains(s, "transaction") && strings.Contains(s, "replica set"):
		return true
	case strings.Contains(s, "session") && strings.Contains(s, "not supported"):
		return true
	case strings.Contains(s, "transaction") && strings.Contains(s, "session"):
		return true
	case strings.Contains(s, "illegal operation"):
		return true
	}
	return false
}
