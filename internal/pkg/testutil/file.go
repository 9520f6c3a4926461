package testutil

// Minimal magic-number payloads that mimetype detects as the named type.
var (
	// PNGBytes is an 8 byte PNG signature followed by an IHDR chunk header.
	PNGBytes = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0x00, 0x00, 0x00, 0x0D, 0x49, 0x48, 0x44, 0x52}
	// PDFBytes starts with the %PDF- marker.
	PDFBytes = []byte("%PDF-1.4\n1 0 obj\n<<>>\nendobj\n")
	// TextBytes is plain UTF-8 text.
	TextBytes = []byte("plain text that is neither image nor video")
)
