package service

import (
	"strings"
	"testing"
)

func TestSnapRequest(t *testing.T) {
	req := snapRequest("DON-1", HostedSessionRequest{Amount: 150000.6, CustomerEmail: "a@b.com", CustomerName: "Amina K"})
	if req.TransactionDetails.OrderID != "DON-1" || req.TransactionDetails.GrossAmt != 150001 {
		t.Fatalf("unexpected details %+v", req.TransactionDetails)
	}
	if req.CustomerDetail == nil || req.CustomerDetail.Email != "a@b.com" || req.CustomerDetail.FName != "Amina K" {
		t.Fatalf("unexpected customer %+v", req.CustomerDetail)
	}

	if anon := snapRequest("DON-2", HostedSessionRequest{Amount: 1}); anon.CustomerDetail != nil {
		t.Fatal("customer details should be omitted when unknown")
	}
}

func TestNewOrderID(t *testing.T) {
	a, b := NewOrderID(), NewOrderID()
	if !strings.HasPrefix(a, "DON-") || a == b {
		t.Fatalf("unexpected order ids %q %q", a, b)
	}
}
