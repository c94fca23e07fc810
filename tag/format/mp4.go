package format

import "bytes"

// MP4 atoms come in two shapes for Serato tags:
//
//   - A plain "----:com.serato.dj:<name>" freeform atom whose content is
//     the tag's raw payload bytes verbatim (Analysis, Autotags, Beatgrid,
//     Markers, Overview, RelVolAd): DecodeMP4Raw/EncodeMP4Raw.
//   - Markers2's own "markersv2" freeform atom, whose content is base64
//     enveloped exactly like a FLAC comment value: DecodeMP4Freeform/
//     EncodeMP4Freeform.

// DecodeMP4Raw returns data unchanged.
func DecodeMP4Raw(data []byte) ([]byte, error) {
	return data, nil
}

// EncodeMP4Raw returns payload unchanged.
func EncodeMP4Raw(payload []byte) ([]byte, error) {
	return payload, nil
}

// DecodeMP4Freeform decodes a base64-enveloped MP4 freeform atom value,
// returning the payload and the original envelope size.
func DecodeMP4Freeform(op string, value []byte) (payload []byte, size int, err error) {
	return DecodeEnveloped(op, value)
}

// EncodeMP4Freeform encodes payload into a base64-enveloped MP4 freeform
// atom value, padding to size bytes.
func EncodeMP4Freeform(payload []byte, size int) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := EncodeEnveloped(&buf, payload, size); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
