package service

import (
	"context"
	"math"

	"github.com/google/uuid"
	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
	pkgerrors "github.com/pkg/errors"
)

// MidtransSnap creates Snap hosted payment pages.
type MidtransSnap struct {
	client snap.Client
}

func NewMidtransSnap(serverKey string, production bool) *MidtransSnap {
	env := midtrans.Sandbox
	if production {
		env = midtrans.Production
	}
	m := &MidtransSnap{}
	m.client.New(serverKey, env)
	return m
}

// snapRequest builds the transaction; gross amount is in whole units.
func snapRequest(orderID string, req HostedSessionRequest) *snap.Request {
	r := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: int64(math.Round(req.Amount)),
		},
	}
	if req.CustomerEmail != "" || req.CustomerName != "" {
		r.CustomerDetail = &midtrans.CustomerDetails{
			FName: req.CustomerName,
			Email: req.CustomerEmail,
		}
	}
	return r
}

func NewOrderID() string {
	return "DON-" + uuid.NewString()
}

// CreateSession ignores ctx: the Snap client has no context support.
func (m *MidtransSnap) CreateSession(_ context.Context, req HostedSessionRequest) (*HostedSession, error) {
	orderID := NewOrderID()
	resp, merr := m.client.CreateTransaction(snapRequest(orderID, req))
	if merr != nil {
		return nil, pkgerrors.Wrap(merr, "midtrans snap transaction")
	}
	return &HostedSession{ID: orderID, URL: resp.RedirectURL}, nil
}
