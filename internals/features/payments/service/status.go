package service

import (
	"log"
	"time"

	"gorm.io/gorm"

	memberModel "gymku_backend/internals/features/members/model"
	paymentModel "gymku_backend/internals/features/payments/model"
	planModel "gymku_backend/internals/features/plans/model"
)

/* =========================================================
   Mapping status gateway -> status lokal
========================================================= */

// MapGatewayStatus menerjemahkan transaction_status + fraud_status Midtrans
// ke status payment lokal. String kosong berarti notifikasi diabaikan
// (pending / status yang tidak mengubah apa-apa).
func MapGatewayStatus(transactionStatus, fraudStatus string) string {
	switch transactionStatus {
	case "capture":
		if fraudStatus == "accept" {
			return paymentModel.PaymentStatusPaid
		}
		if fraudStatus == "deny" {
			return paymentModel.PaymentStatusFailed
		}
		return "" // challenge: tunggu keputusan
	case "settlement":
		return paymentModel.PaymentStatusPaid
	case "deny", "cancel", "failure":
		return paymentModel.PaymentStatusFailed
	case "expire":
		return paymentModel.PaymentStatusExpired
	default:
		return ""
	}
}

/* =========================================================
   Side effect pembayaran sukses: perpanjang membership
========================================================= */

// ApplySettlement menandai payment paid dan memperpanjang masa aktif member.
// Perpanjangan dihitung dari membership_end_date yang belum lewat, atau dari
// paidAt jika membership sudah habis.
func ApplySettlement(db *gorm.DB, p *paymentModel.PaymentModel, paidAt time.Time) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(p).Updates(map[string]interface{}{
			"payment_status":  paymentModel.PaymentStatusPaid,
			"payment_paid_at": paidAt,
		}).Error; err != nil {
			return err
		}

		if p.PaymentPlanID == nil {
			return nil
		}

		var plan planModel.MembershipPlanModel
		if err := tx.Where("plan_id = ?", *p.PaymentPlanID).First(&plan).Error; err != nil {
			// Plan sudah dihapus: pembayaran tetap paid, perpanjangan dilewati
			log.Printf("[WARN] settlement %s: plan lookup failed: %v", p.PaymentOrderID, err)
			return nil
		}

		var member memberModel.MemberModel
		if err := tx.Where("member_id = ?", p.PaymentMemberID).First(&member).Error; err != nil {
			return err
		}

		base := paidAt
		if member.MemberMembershipEndDate != nil && member.MemberMembershipEndDate.After(paidAt) {
			base = *member.MemberMembershipEndDate
		}
		newEnd := base.AddDate(0, 0, plan.PlanDurationDays)

		updates := map[string]interface{}{
			"member_membership_end_date": newEnd,
			"member_membership_plan_id":  plan.PlanID,
		}
		if member.MemberMembershipStartDate == nil {
			updates["member_membership_start_date"] = paidAt
		}
		if member.MemberStatus == "inactive" {
			updates["member_status"] = "active"
		}
		return tx.Model(&member).Updates(updates).Error
	})
}

/* =========================================================
   Sweep jatuh tempo
========================================================= */

// MarkOverduePayments menandai payment pending yang lewat due date sebagai
// overdue. Dipanggil periodik atau sebelum listing tagihan.
func MarkOverduePayments(db *gorm.DB, now time.Time) (int64, error) {
	res := db.Model(&paymentModel.PaymentModel{}).
		Where("payment_status = ? AND payment_due_date IS NOT NULL AND payment_due_date < ?",
			paymentModel.PaymentStatusPending, now.Format("2006-01-02")).
		Update("payment_status", paymentModel.PaymentStatusOverdue)
	return res.RowsAffected, res.Error
}
