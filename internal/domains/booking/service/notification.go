package service

import (
	"fmt"
	"sportshub/infras/mail"
	"sportshub/internal/domains/booking/model"
	"sportshub/shared/constant"
	"strings"
)

const (
	subjectPrefix       = "Sports Hub Booking "
	reasonNotSpecified  = "Not specified"
	notificationWarning = "booking updated but the notification email could not be sent"
)

func notificationSubject(status string) string {
	return subjectPrefix + status
}

// notificationBody renders the decision email. Requester supplied text is escaped by the renderer.
func notificationBody(detail model.BookingDetail) (string, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "Hello %s,\n\n", detail.UserName)
	fmt.Fprintf(&b, "Your booking for **%s** on %s from %s to %s",
		detail.EventName,
		detail.Date.Format(constant.DayFormat),
		detail.StartTime.Format(constant.ClockFormat),
		detail.EndTime.Format(constant.ClockFormat),
	)

	if detail.VenueName != nil {
		fmt.Fprintf(&b, " at %s", *detail.VenueName)
	}

	fmt.Fprintf(&b, " has been **%s**.\n\n", strings.ToLower(detail.Status))

	if detail.Status == constant.StatusRejected {
		reason := reasonNotSpecified
		if detail.RejectionReason != nil {
			reason = *detail.RejectionReason
		}

		fmt.Fprintf(&b, "**Reason:** %s\n\n", reason)
	}

	b.WriteString("Thank you,\nSports Hub Team\n")

	return mail.RenderMarkdown(b.String()) //nolint:wrapcheck
}
