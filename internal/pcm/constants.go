package pcm

// Supported bit depths.
const (
	bitsPerSample16 = 16
	bitsPerSample24 = 24
	bitsPerSample32 = 32
)

// Positive full scale per bit depth.
const (
	maxInt16 = 32767.0
	maxInt24 = 8388607.0
	maxInt32 = 2147483647.0
)

const (
	// wavFormatPCM is the WAVE_FORMAT_PCM format tag.
	wavFormatPCM = 1

	// monoChannels is the channel count of every envelope file.
	monoChannels = 1

	// maxSampleRate bounds the rate accepted by WriteWAV.
	maxSampleRate = 768000
)

// MaxFrames bounds the length of a held track. Tracks are built in memory,
// one int per frame.
const MaxFrames = 1 << 24

