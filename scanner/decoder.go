package scanner

import (
	"image"

	"github.com/makiuchi-d/gozxing"
	zxqrcode "github.com/makiuchi-d/gozxing/qrcode"
)

type ZXingDecoder struct {
	hints map[gozxing.DecodeHintType]interface{}
}

func NewZXingDecoder() *ZXingDecoder {
	return &ZXingDecoder{
		hints: map[gozxing.DecodeHintType]interface{}{
			gozxing.DecodeHintType_TRY_HARDER: true,
		},
	}
}

func (d *ZXingDecoder) Decode(img image.Image) (string, error) {
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return "", err
	}
	// QRCodeReader giữ trạng thái nội bộ, mỗi lần giải mã dùng reader mới
	result, err := zxqrcode.NewQRCodeReader().Decode(bmp, d.hints)
	if err != nil {
		return "", err
	}
	return result.GetText(), nil
}
