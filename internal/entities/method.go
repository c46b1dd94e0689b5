package entities

// Method is how an interview is conducted.
type Method string

const (
	MethodVideoCall  Method = "VIDEO_CALL"
	MethodPhoneCall  Method = "PHONE_CALL"
	MethodInPerson   Method = "IN_PERSON"
	MethodOnlineTest Method = "ONLINE_TEST"
	MethodTakeHome   Method = "TAKE_HOME"
)

var methodDisplayNames = map[Method]string{
	MethodVideoCall:  "Video Call",
	MethodPhoneCall:  "Phone Call",
	MethodInPerson:   "In Person",
	MethodOnlineTest: "Online Test",
	MethodTakeHome:   "Take Home",
}

func (m Method) DisplayName() string {
	if name, ok := methodDisplayNames[m]; ok {
		return name
	}
	return string(m)
}
