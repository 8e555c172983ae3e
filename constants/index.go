package constants

const (
	ROLE_ADMIN    = "admin"
	ROLE_EMPLOYEE = "employee"
)

const (
	TOKEN_KEY      = "accessToken"
	SESSION_COOKIE = "session_id"
)

const (
	ERROR_INTERNAL_ERROR     = "Lỗi hệ thống"
	ERROR_INPUT              = "Dữ liệu không hợp lệ"
	ERROR_BACKEND            = "Không thể kết nối tới máy chủ"
	MISSING_TOKEN            = "Chưa đăng nhập"
	NOT_PERMISSION           = "Không có quyền truy cập"
	SESSION_EXPIRED          = "Phiên đăng nhập đã hết hạn"
	LOGIN_FAILED             = "Đăng nhập thất bại. Không tìm thấy token!"
	LOGIN_SUCCESS            = "Đăng nhập thành công"
	LOGOUT_SUCCESS           = "Đăng xuất thành công"
	DATA_INPUT_IS_NOT_NUMBER = "Tham số phải là số"
	ORDER_NOT_FOUND          = "Không tìm thấy đơn hàng"
	ORDER_EMPTY_SEATS        = "Chưa chọn ghế"
	PAYMENT_PROCESSING       = "Đang xử lý thanh toán"
	PAYMENT_SUCCESS          = "Xác nhận thành công!"
	PAYMENT_FAILED           = "Thanh toán không thành công"
	PAYMENT_ERROR            = "Đã có lỗi xảy ra khi thanh toán"
	CAMERA_UNAVAILABLE       = "Không thể truy cập camera. Vui lòng kiểm tra quyền truy cập."
	CAMERA_LIST_FAILED       = "Không thể truy cập camera"
	CAMERA_BUSY              = "Camera đang được sử dụng"
	SCANNER_RUNNING          = "Không thể đổi camera khi đang quét"
	QR_INVALID               = "Mã QR không hợp lệ. Vui lòng thử lại."
	QR_VERIFY_ERROR          = "Lỗi khi xác minh QR. Vui lòng thử lại."
	QR_VERIFY_SUCCESS        = "Xác minh thành công cho %s"
	QR_GENERATE_FAILED       = "Không thể tạo mã QR"
	SHOWTIME_SYSTEM_ERROR    = "Lỗi hệ thống khi tạo lịch chiếu"
)
