package constants

const (
	PanicMsgAppConfigRequired = "AppConfig는 필수입니다"
	PanicMsgGatewayRequired   = "Gateway는 필수입니다"
)
