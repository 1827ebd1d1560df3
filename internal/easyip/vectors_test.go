package easyip

// Reconfiguration request captured on the wire for the daddes/dinges configuration
var capturedReconfigurationRequest = []byte{
	0, 1, 0, 175, 0, 2, 168, 19, 116, 118, 168, 107, 0, 28, 66, 75,
	187, 248, 10, 1, 0, 4, 0, 1, 32, 17, 30, 17, 35, 31, 30, 25,
	19, 0, 0, 2, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 1, 3, 0, 1, 0, 1, 0, 0, 32, 0, 4, 10, 1,
	0, 215, 0, 33, 0, 4, 255, 255, 255, 0, 0, 34, 0, 4, 10, 1,
	0, 1, 0, 35, 0, 8, 0, 0, 0, 0, 0, 0, 0, 0, 0, 37,
	0, 2, 0, 80, 0, 64, 0, 16, 254, 128, 0, 0, 0, 0, 0, 0,
	170, 19, 116, 255, 254, 118, 168, 107, 0, 65, 0, 16, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 66, 0, 32,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 68, 0, 2, 0, 80, 0, 160, 0, 4, 10, 1, 0, 215, 0, 161,
	0, 4, 255, 255, 255, 0, 0, 162, 0, 4, 10, 1, 0, 1, 0, 163,
	0, 8, 0, 0, 0, 0, 0, 0, 0, 0, 0, 166, 0, 1, 146, 255,
	255, 29, 83,
}

// Discovery request captured from 00:1c:42:4b:bb:f8 at 169.254.224.14
var capturedDiscoveryRequest = []byte{
	0, 1, 0, 42, 0, 13, 0, 0, 0, 0, 0, 0, 0, 28, 66, 75,
	187, 248, 169, 254, 224, 14, 0, 0, 32, 17, 30, 17, 35, 31, 30, 25,
	19, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	255, 240, 0, 38, 0, 32, 0, 33, 0, 34, 0, 35, 0, 37, 0, 40,
	0, 64, 0, 65, 0, 66, 0, 68, 0, 165, 0, 166, 0, 167, 0, 168,
	0, 173, 0, 179, 0, 180, 0, 183, 0, 184, 255, 255, 18, 33,
}

// Reply captured from an AW-HE130 at 10.1.0.216
var capturedReply = []byte{
	0, 1, 1, 117, 0, 1, 168, 19, 116, 118, 168, 107, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 32, 17, 30, 17, 35, 31, 30, 25,
	19, 0, 0, 2, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 1, 3, 0, 1, 0, 1, 0, 0, 32, 0, 4, 10, 1,
	0, 216, 0, 33, 0, 4, 255, 255, 255, 0, 0, 34, 0, 4, 10, 1,
	0, 1, 0, 35, 0, 8, 10, 1, 0, 250, 10, 1, 0, 251, 0, 37,
	0, 2, 0, 80, 0, 64, 0, 16, 254, 128, 0, 0, 0, 0, 0, 0,
	170, 19, 116, 255, 254, 118, 168, 107, 0, 65, 0, 16, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 66, 0, 32,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 68, 0, 2, 0, 80, 0, 69, 0, 2, 0, 64, 0, 160, 0, 4,
	10, 1, 0, 216, 0, 161, 0, 4, 255, 255, 255, 0, 0, 162, 0, 4,
	10, 1, 0, 1, 0, 163, 0, 8, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 164, 0, 4, 127, 255, 255, 255, 0, 166, 0, 1, 146, 0, 167, 0,
	16, 65, 87, 45, 72, 69, 49, 51, 48, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 168, 0, 16, 67, 65, 77, 58, 72, 69, 49, 51, 48, 75, 0,
	0, 0, 0, 0, 0, 0, 169, 0, 16, 48, 50, 46, 48, 48, 48, 48,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 170, 0, 16, 48, 46, 48,
	48, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 177, 0,
	40, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 178, 0, 40, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 180, 0, 2, 0, 0, 0, 181, 0, 1, 0,
	0, 182, 0, 1, 146, 255, 255, 47, 26,
}
