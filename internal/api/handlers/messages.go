package handlers

// Сообщения, общие для нескольких хендлеров
const (
	MsgForbidden        = "您沒有權限訪問此頁面。"
	MsgInvalidBookingID = "預約編號無效。"
	MsgInvalidBody      = "請求內容格式錯誤。"
)
