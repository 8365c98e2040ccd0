package usecase

import (
	"fmt"

	"rentloop/internal/usecase/readmodel"
)

// Outgoing notification texts. The engine speaks through the gateway in
// plain text; formatting is the gateway's business.

const dateFmt = "02.01.2006"

func fmtSpan(rm *readmodel.BookingRM) string {
	return fmt.Sprintf("%s – %s", rm.StartDate.Format(dateFmt), rm.EndDate.Format(dateFmt))
}

func msgRequestReceived(rm *readmodel.BookingRM) string {
	return fmt.Sprintf("New booking request for %q (%s). Confirm or decline it in your bookings list.", rm.ItemName, fmtSpan(rm))
}

func msgConfirmed(rm *readmodel.BookingRM) string {
	text := fmt.Sprintf("The owner confirmed your booking of %q (%s). Please complete the payment before the rental starts.", rm.ItemName, fmtSpan(rm))
	if rm.DepositRequired {
		text += " A deposit is required for this item."
	}
	return text
}

func msgDeclined(rm *readmodel.BookingRM) string {
	return fmt.Sprintf("The owner declined your booking request for %q (%s).", rm.ItemName, fmtSpan(rm))
}

func msgPaidConfirmed(rm *readmodel.BookingRM) string {
	return fmt.Sprintf("Payment received. Your booking of %q (%s) is complete, enjoy the rental!", rm.ItemName, fmtSpan(rm))
}

func msgCanceledUnpaid(rm *readmodel.BookingRM) string {
	return fmt.Sprintf("The owner canceled your unpaid booking of %q (%s).", rm.ItemName, fmtSpan(rm))
}

func msgRenterCanceled(rm *readmodel.BookingRM, wasPaid bool) string {
	text := fmt.Sprintf("The renter canceled the booking of %q (%s).", rm.ItemName, fmtSpan(rm))
	if wasPaid {
		text += " The booking was already paid, please refund the renter."
		if rm.DepositRequired {
			text += " Remember to return the deposit as well."
		}
	}
	return text
}

func msgPaidNotice(rm *readmodel.BookingRM) string {
	return fmt.Sprintf("The renter reports having paid for the booking of %q (%s). Please verify and confirm the payment.", rm.ItemName, fmtSpan(rm))
}

func msgPaymentReminder(due *readmodel.DueReminderRM, hoursBefore int) string {
	return fmt.Sprintf("Reminder: your booking of %q starts on %s and is still unpaid (%d hours before start). It will be canceled automatically if payment is not confirmed.",
		due.ItemName, due.StartDate.Format(dateFmt), hoursBefore)
}

func msgAutoCanceledRenter(rm *readmodel.BookingRM) string {
	return fmt.Sprintf("Your booking of %q (%s) was canceled automatically because payment was not confirmed before the start date.", rm.ItemName, fmtSpan(rm))
}

func msgAutoCanceledOwner(rm *readmodel.BookingRM) string {
	return fmt.Sprintf("The unpaid booking of %q (%s) was canceled automatically, the dates are free again.", rm.ItemName, fmtSpan(rm))
}

func msgRefundPrompt(rm *readmodel.BookingRM) string {
	text := fmt.Sprintf("You canceled the paid booking of %q (%s). Please confirm once the owner has returned your money", rm.ItemName, fmtSpan(rm))
	if rm.DepositRequired {
		text += " and your deposit"
	}
	return text + "."
}

func msgRefundReminder(rm *readmodel.BookingRM) string {
	text := fmt.Sprintf("Reminder: you canceled the paid booking of %q (%s). Please confirm once the owner has returned your money", rm.ItemName, fmtSpan(rm))
	if rm.DepositRequired {
		text += " and your deposit"
	}
	return text + "."
}
