package submit_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/most-gh/mddroner-booking/internal/domain"
	"github.com/most-gh/mddroner-booking/pkg/ptr"
)

// NotificationTitle заголовок уведомления о новой заявке
const NotificationTitle = "新的 MDDroner 預約申請"

const plateNotProvided = "未提供"

// formatNotification собирает текст уведомления владельцу
func formatNotification(booking *domain.Booking, submittedAt time.Time) string {
	plate := ptr.Deref(booking.CarPlate)
	if plate == "" {
		plate = plateNotProvided
	}

	var b strings.Builder
	b.WriteString("新的預約申請\n\n")
	fmt.Fprintf(&b, "• 地點: %s\n", booking.Route)
	fmt.Fprintf(&b, "• 姓名: %s\n", booking.Name)
	fmt.Fprintf(&b, "• 聯絡電話: %s\n", booking.Phone)
	fmt.Fprintf(&b, "• 車型: %s\n", booking.CarModel)
	fmt.Fprintf(&b, "• 車牌: %s\n", plate)
	fmt.Fprintf(&b, "• 預期拍攝日期: %s\n", booking.BookingDate)
	fmt.Fprintf(&b, "• 多台車: %s\n", domain.YesNo(booking.MultipleVehicles))
	fmt.Fprintf(&b, "• 動態影片: %s\n", domain.YesNo(booking.VideoUpgrade))
	if booking.SpecialRequests != nil {
		fmt.Fprintf(&b, "• 特別要求: %s\n", *booking.SpecialRequests)
	}
	fmt.Fprintf(&b, "• 提交時間: %s", domain.FormatLocalDateTime(submittedAt))

	return b.String()
}
