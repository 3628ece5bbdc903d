package usecases

import "time"

// SetTimeNow swaps the clock used by the usecases and returns a restore func
func SetTimeNow(f func() time.Time) func() {
	prev := timeNow
	timeNow = f
	return func() { timeNow = prev }
}

// SetGenerateOTP swaps the OTP generator and returns a restore func
func SetGenerateOTP(f func() (string, error)) func() {
	prev := generateOTP
	generateOTP = f
	return func() { generateOTP = prev }
}

// SetEncodeQRCode swaps the QR renderer and returns a restore func
func SetEncodeQRCode(f func(content string, size int) (string, error)) func() {
	prev := encodeQRCode
	encodeQRCode = f
	return func() { encodeQRCode = prev }
}
