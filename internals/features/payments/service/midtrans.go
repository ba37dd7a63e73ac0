package service

import (
	"errors"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	paymentModel "gymku_backend/internals/features/payments/model"
)

/* =========================================================
   Midtrans Client
========================================================= */

var SnapClient snap.Client

// InitMidtrans harus dipanggil saat bootstrap app.
// useProduction=true untuk Production, false untuk Sandbox.
func InitMidtrans(serverKey string, useProduction bool) {
	if useProduction {
		SnapClient.New(serverKey, midtrans.Production)
	} else {
		SnapClient.New(serverKey, midtrans.Sandbox)
	}
}

/* =========================================================
   Input helper untuk data customer
========================================================= */

type CustomerInput struct {
	Name  string
	Email string
	Phone string
}

/* =========================================================
   Generate Snap Token
========================================================= */

func GenerateSnapToken(p paymentModel.PaymentModel, cust CustomerInput) (string, string, error) {
	if p.PaymentAmountIDR <= 0 {
		return "", "", errors.New("invalid payment_amount_idr")
	}
	if p.PaymentOrderID == "" {
		return "", "", errors.New("payment_order_id is required (used as OrderID)")
	}

	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  p.PaymentOrderID,
			GrossAmt: p.PaymentAmountIDR,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: cust.Name,
			Email: cust.Email,
			Phone: cust.Phone,
		},
		CreditCard: &snap.CreditCardDetails{Secure: true},
	}

	itemName := "Membership"
	if p.PaymentDescription != nil && *p.PaymentDescription != "" {
		itemName = truncate(*p.PaymentDescription, 50)
	}
	req.Items = &[]midtrans.ItemDetails{
		{
			ID:       p.PaymentOrderID,
			Price:    p.PaymentAmountIDR,
			Qty:      1,
			Name:     itemName,
			Category: "Membership",
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", "", err
	}
	return resp.Token, resp.RedirectURL, nil
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	return s[:n]
}
