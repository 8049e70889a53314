package terminal

// Pre-allocated ANSI sequence fragments (avoid allocations during render)
var (
	csi = []byte("\x1b[")

	// Reset is the SGR reset sequence terminating every styled run.
	Reset = []byte("\x1b[0m")

	fg256 = []byte("38;5;")
	bg256 = []byte("48;5;")
	fgRGB = []byte("38;2;")
	bgRGB = []byte("48;2;")
)

// appendInt appends an integer without allocation.
// Optimized for SGR parameter values (0-255).
func appendInt(dst []byte, n int) []byte {
	if n < 0 {
		n = 0
	}
	if n < 10 {
		return append(dst, byte(n)+'0')
	}
	if n < 100 {
		return append(dst, byte(n/10)+'0', byte(n%10)+'0')
	}
	if n < 1000 {
		return append(dst, byte(n/100)+'0', byte(n/10%10)+'0', byte(n%10)+'0')
	}
	// Fallback for >999 (rare)
	var buf [5]byte
	i := 4
	for n > 0 {
		buf[i] = byte(n%10) + '0'
		n /= 10
		i--
	}
	return append(dst, buf[i+1:]...)
}

// AppendStyle appends one combined SGR sequence for the given styling:
// attribute codes in ascending order, then the foreground, then the
// background, semicolon-joined between CSI and the 'm' terminator.
// Appends nothing when the triple carries no styling at all.
func AppendStyle(dst []byte, fg, bg Color, attrs Attr) []byte {
	if fg.IsDefault() && bg.IsDefault() && attrs == AttrNone {
		return dst
	}

	dst = append(dst, csi...)
	first := true

	for _, sc := range sgrCodes {
		if attrs&sc.attr == 0 {
			continue
		}
		if !first {
			dst = append(dst, ';')
		}
		dst = append(dst, sc.code)
		first = false
	}

	if !fg.IsDefault() {
		if !first {
			dst = append(dst, ';')
		}
		dst = appendColor(dst, fg)
		first = false
	}
	if !bg.IsDefault() {
		if !first {
			dst = append(dst, ';')
		}
		dst = appendColor(dst, bg)
	}

	return append(dst, 'm')
}

// appendColor appends the parameter portion of a color code. The
// background tag selects the 48-prefixed form.
func appendColor(dst []byte, c Color) []byte {
	switch c.kind {
	case ColorPalette:
		if c.bg {
			dst = append(dst, bg256...)
		} else {
			dst = append(dst, fg256...)
		}
		return appendInt(dst, int(c.r))
	case ColorRGB:
		if c.bg {
			dst = append(dst, bgRGB...)
		} else {
			dst = append(dst, fgRGB...)
		}
		dst = appendInt(dst, int(c.r))
		dst = append(dst, ';')
		dst = appendInt(dst, int(c.g))
		dst = append(dst, ';')
		return appendInt(dst, int(c.b))
	}
	return dst
}
