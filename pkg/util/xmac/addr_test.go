package xmac

import (
	"net"
	"testing"
)

func TestAddrFrom6(t *testing.T) {
	b := [6]byte{0x00, 0x11, 0x22, 0x33, 0x44, 0x55}
	addr := AddrFrom6(b)
	if addr.Bytes() != b {
		t.Errorf("Bytes() = %v, want %v", addr.Bytes(), b)
	}

	// Bytes 返回副本，修改不影响原值
	got := addr.Bytes()
	got[0] = 0xff
	if addr.Bytes()[0] != 0x00 {
		t.Error("Bytes() did not return a copy")
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{"equal", "aa:bb:cc:dd:ee:ff", "aa:bb:cc:dd:ee:ff", 0},
		{"zero_equal", "00:00:00:00:00:00", "00:00:00:00:00:00", 0},
		{"first_byte_less", "00:ff:ff:ff:ff:ff", "01:00:00:00:00:00", -1},
		{"first_byte_greater", "02:00:00:00:00:00", "01:ff:ff:ff:ff:ff", 1},
		{"last_byte_less", "aa:bb:cc:dd:ee:fe", "aa:bb:cc:dd:ee:ff", -1},
		{"last_byte_greater", "aa:bb:cc:dd:ee:ff", "aa:bb:cc:dd:ee:fe", 1},
		{"zero_vs_broadcast", "00:00:00:00:00:00", "ff:ff:ff:ff:ff:ff", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := MustParse(tt.a), MustParse(tt.b)
			if got := a.Compare(b); got != tt.want {
				t.Errorf("Compare(%s, %s) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
			// 反对称性
			if got := b.Compare(a); got != -tt.want {
				t.Errorf("Compare(%s, %s) = %d, want %d", tt.b, tt.a, got, -tt.want)
			}
		})
	}
}

// 不等地址的比较结果非 0，且小于/大于恰有其一（严格全序）。
func TestCompare_TotalOrder(t *testing.T) {
	addrs := []Addr{
		MustParse("00:00:00:00:00:00"),
		MustParse("00:00:00:00:00:01"),
		MustParse("00:11:22:33:44:55"),
		MustParse("80:00:00:00:00:00"),
		MustParse("ff:ff:ff:ff:ff:fe"),
		MustParse("ff:ff:ff:ff:ff:ff"),
	}
	for i, a := range addrs {
		for j, b := range addrs {
			c := a.Compare(b)
			switch {
			case i == j && c != 0:
				t.Errorf("Compare(%v, %v) = %d, want 0", a, b, c)
			case i < j && c != -1:
				t.Errorf("Compare(%v, %v) = %d, want -1", a, b, c)
			case i > j && c != 1:
				t.Errorf("Compare(%v, %v) = %d, want 1", a, b, c)
			}
			if (c == 0) != (a == b) {
				t.Errorf("Compare(%v, %v) == 0 disagrees with ==", a, b)
			}
		}
	}
}

func TestHardwareAddrRoundTrip(t *testing.T) {
	addr := MustParse("02:42:ac:11:00:02")
	hw := addr.HardwareAddr()
	if len(hw) != 6 {
		t.Fatalf("HardwareAddr length = %d, want 6", len(hw))
	}

	back, err := FromHardwareAddr(hw)
	if err != nil {
		t.Fatalf("FromHardwareAddr error: %v", err)
	}
	if back != addr {
		t.Errorf("round trip = %v, want %v", back, addr)
	}

	// 返回副本，修改不影响原值
	hw[0] = 0xff
	if addr.HardwareAddr()[0] != 0x02 {
		t.Error("HardwareAddr() did not return a copy")
	}
}

func TestFromHardwareAddr_WrongLength(t *testing.T) {
	// EUI-64 不支持
	hw := net.HardwareAddr{0, 1, 2, 3, 4, 5, 6, 7}
	if _, err := FromHardwareAddr(hw); err == nil {
		t.Error("FromHardwareAddr(8 bytes) did not fail")
	}
	if _, err := FromHardwareAddr(nil); err == nil {
		t.Error("FromHardwareAddr(nil) did not fail")
	}
}

func TestAddrAsMapKey(t *testing.T) {
	m := map[Addr]int{
		MustParse("aa:bb:cc:dd:ee:ff"): 1,
		MustParse("00:11:22:33:44:55"): 2,
	}
	if m[MustParse("aa:bb:cc:dd:ee:ff")] != 1 {
		t.Error("Addr map key lookup failed")
	}
	if len(m) != 2 {
		t.Errorf("map size = %d, want 2", len(m))
	}
}
