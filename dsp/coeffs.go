package dsp

// Coefficient tables for the decimation stages and channel-shaping filters
// used by the two Channelizer variants and the FM/AM demodulators. Each
// table is a windowed-sinc lowpass FIR, normalized to unity DC gain, built
// offline and never recomputed at runtime. Tables are keyed by the
// sample-rate transition they implement (or, for the non-decimating
// channel filters, by the bandwidth mode they shape).

// CoeffDec960k192k is the 960000Hz→192000Hz (÷5) decimation filter.
var CoeffDec960k192k = []float32{
	-0.0012134209, -0.0013929117, -0.0012435383, -0.00045753392, 0.0012318191, 0.0036940778,
	0.006130691, 0.0071203529, 0.0050946069, -0.00085217668, -0.010124127, -0.020165274,
	-0.026716045, -0.024873818, -0.010713747, 0.017057238, 0.056044176, 0.10019516,
	0.1410559, 0.1699429, 0.18037134, 0.1699429, 0.1410559, 0.10019516,
	0.056044176, 0.017057238, -0.010713747, -0.024873818, -0.026716045, -0.020165274,
	-0.010124127, -0.00085217668, 0.0050946069, 0.0071203529, 0.006130691, 0.0036940778,
	0.0012318191, -0.00045753392, -0.0012435383, -0.0013929117, -0.0012134209,
}

// CoeffDec192k64k is the 192000Hz→64000Hz (÷3) decimation filter.
var CoeffDec192k64k = []float32{
	-0.0020238355, -0.0022460508, 1.6608956e-18, 0.0061612634, 0.011763544, 0.0059315473,
	-0.016885788, -0.042073917, -0.036116824, 0.028449357, 0.14243324, 0.25418896,
	0.30083701, 0.25418896, 0.14243324, 0.028449357, -0.036116824, -0.042073917,
	-0.016885788, 0.0059315473, 0.011763544, 0.0061612634, 1.6608956e-18, -0.0022460508,
	-0.0020238355,
}

// CoeffDec64k32k is the 64000Hz→32000Hz (÷2) decimation filter.
var CoeffDec64k32k = []float32{
	-0.0030383347, -0.002383055, 0.0092497541, 0.016443893, -0.025350221, -0.06793957,
	0.042710323, 0.30448759, 0.45163925, 0.30448759, 0.042710323, -0.06793957,
	-0.025350221, 0.016443893, 0.0092497541, -0.002383055, -0.0030383347,
}

// CoeffDec192k48k is the 192000Hz→48000Hz (÷4) decimation filter.
var CoeffDec192k48k = []float32{
	-0.001517196, -0.00174579, -0.0011899813, 0.00090251398, 0.0046188756, 0.0082246793,
	0.0082112775, 0.0012523567, -0.012658663, -0.027910087, -0.033925704, -0.019427156,
	0.02132745, 0.083649814, 0.15204624, 0.20537808, 0.22552659, 0.20537808,
	0.15204624, 0.083649814, 0.02132745, -0.019427156, -0.033925704, -0.027910087,
	-0.012658663, 0.0012523567, 0.0082112775, 0.0082246793, 0.0046188756, 0.00090251398,
	-0.0011899813, -0.00174579, -0.001517196,
}

// CoeffDec48k16k is the 48000Hz→16000Hz (÷3) decimation filter.
var CoeffDec48k16k = []float32{
	-0.0020238355, -0.0022460508, 1.6608956e-18, 0.0061612634, 0.011763544, 0.0059315473,
	-0.016885788, -0.042073917, -0.036116824, 0.028449357, 0.14243324, 0.25418896,
	0.30083701, 0.25418896, 0.14243324, 0.028449357, -0.036116824, -0.042073917,
	-0.016885788, 0.0059315473, 0.011763544, 0.0061612634, 1.6608956e-18, -0.0022460508,
	-0.0020238355,
}

// CoeffDec2400k800k is the 2400000Hz→800000Hz (÷3) decimation filter.
var CoeffDec2400k800k = []float32{
	-0.0020238355, -0.0022460508, 1.6608956e-18, 0.0061612634, 0.011763544, 0.0059315473,
	-0.016885788, -0.042073917, -0.036116824, 0.028449357, 0.14243324, 0.25418896,
	0.30083701, 0.25418896, 0.14243324, 0.028449357, -0.036116824, -0.042073917,
	-0.016885788, 0.0059315473, 0.011763544, 0.0061612634, 1.6608956e-18, -0.0022460508,
	-0.0020238355,
}

// CoeffDec800k160k is the 800000Hz→160000Hz (÷5) decimation filter.
var CoeffDec800k160k = []float32{
	-0.0012134209, -0.0013929117, -0.0012435383, -0.00045753392, 0.0012318191, 0.0036940778,
	0.006130691, 0.0071203529, 0.0050946069, -0.00085217668, -0.010124127, -0.020165274,
	-0.026716045, -0.024873818, -0.010713747, 0.017057238, 0.056044176, 0.10019516,
	0.1410559, 0.1699429, 0.18037134, 0.1699429, 0.1410559, 0.10019516,
	0.056044176, 0.017057238, -0.010713747, -0.024873818, -0.026716045, -0.020165274,
	-0.010124127, -0.00085217668, 0.0050946069, 0.0071203529, 0.006130691, 0.0036940778,
	0.0012318191, -0.00045753392, -0.0012435383, -0.0013929117, -0.0012134209,
}

// CoeffDec160k32k is the 160000Hz→32000Hz (÷5) decimation filter.
var CoeffDec160k32k = []float32{
	-0.0012134209, -0.0013929117, -0.0012435383, -0.00045753392, 0.0012318191, 0.0036940778,
	0.006130691, 0.0071203529, 0.0050946069, -0.00085217668, -0.010124127, -0.020165274,
	-0.026716045, -0.024873818, -0.010713747, 0.017057238, 0.056044176, 0.10019516,
	0.1410559, 0.1699429, 0.18037134, 0.1699429, 0.1410559, 0.10019516,
	0.056044176, 0.017057238, -0.010713747, -0.024873818, -0.026716045, -0.020165274,
	-0.010124127, -0.00085217668, 0.0050946069, 0.0071203529, 0.006130691, 0.0036940778,
	0.0012318191, -0.00045753392, -0.0012435383, -0.0013929117, -0.0012134209,
}

// CoeffDec32k16k is the 32000Hz→16000Hz (÷2) decimation filter.
var CoeffDec32k16k = []float32{
	-0.0030383347, -0.002383055, 0.0092497541, 0.016443893, -0.025350221, -0.06793957,
	0.042710323, 0.30448759, 0.45163925, 0.30448759, 0.042710323, -0.06793957,
	-0.025350221, 0.016443893, 0.0092497541, -0.002383055, -0.0030383347,
}

// CoeffDecAudio32k16k is the 32000Hz→16000Hz (÷2) decimation filter.
var CoeffDecAudio32k16k = []float32{
	-0.0030383347, -0.002383055, 0.0092497541, 0.016443893, -0.025350221, -0.06793957,
	0.042710323, 0.30448759, 0.45163925, 0.30448759, 0.042710323, -0.06793957,
	-0.025350221, 0.016443893, 0.0092497541, -0.002383055, -0.0030383347,
}

// CoeffDec192k32k is the 192000Hz→32000Hz (÷6) decimation filter.
var CoeffDec192k32k = []float32{
	-0.0010109942, -0.001149478, -0.0011220005, -0.0007929524, 8.2968988e-19, 0.0013339434,
	0.0030778202, 0.0048167866, 0.0058764038, 0.0054716424, 0.0029630669, -0.0018418569,
	-0.0084351886, -0.015500064, -0.021017759, -0.022606631, -0.018041931, -0.0058442377,
	0.014211696, 0.040813101, 0.071151625, 0.10131708, 0.12697849, 0.14421083,
	0.15028123, 0.14421083, 0.12697849, 0.10131708, 0.071151625, 0.040813101,
	0.014211696, -0.0058442377, -0.018041931, -0.022606631, -0.021017759, -0.015500064,
	-0.0084351886, -0.0018418569, 0.0029630669, 0.0054716424, 0.0058764038, 0.0048167866,
	0.0030778202, 0.0013339434, 8.2968988e-19, -0.0007929524, -0.0011220005, -0.001149478,
	-0.0010109942,
}

// CoeffChannel25k is a non-decimating (÷1) channel-shaping filter at 32000Hz, cutoff 12500Hz.
var CoeffChannel25k = []float32{
	-3.9069288e-19, 0.00053539778, -0.00092423777, 0.00096588015, -0.00050022589, -0.00045953362,
	0.0016030541, -0.0023360863, 0.0020132456, -0.00033656416, -0.0022857668, 0.0046860648,
	-0.0053502515, 0.003209142, 0.0015529361, -0.007161319, 0.01073995, -0.0095949717,
	0.0027925343, 0.0077719369, -0.017542701, 0.020952033, -0.014065062, -0.0028828221,
	0.024337429, -0.040517334, 0.04067979, -0.017471433, -0.029378426, 0.091695589,
	-0.15467379, 0.20142994, 0.78103121, 0.20142994, -0.15467379, 0.091695589,
	-0.029378426, -0.017471433, 0.04067979, -0.040517334, 0.024337429, -0.0028828221,
	-0.014065062, 0.020952033, -0.017542701, 0.0077719369, 0.0027925343, -0.0095949717,
	0.01073995, -0.007161319, 0.0015529361, 0.003209142, -0.0053502515, 0.0046860648,
	-0.0022857668, -0.00033656416, 0.0020132456, -0.0023360863, 0.0016030541, -0.00045953362,
	-0.00050022589, 0.00096588015, -0.00092423777, 0.00053539778, -3.9069288e-19,
}

// CoeffChannel12k5 is a non-decimating (÷1) channel-shaping filter at 16000Hz, cutoff 6250Hz.
var CoeffChannel12k5 = []float32{
	-3.9069288e-19, 0.00053539778, -0.00092423777, 0.00096588015, -0.00050022589, -0.00045953362,
	0.0016030541, -0.0023360863, 0.0020132456, -0.00033656416, -0.0022857668, 0.0046860648,
	-0.0053502515, 0.003209142, 0.0015529361, -0.007161319, 0.01073995, -0.0095949717,
	0.0027925343, 0.0077719369, -0.017542701, 0.020952033, -0.014065062, -0.0028828221,
	0.024337429, -0.040517334, 0.04067979, -0.017471433, -0.029378426, 0.091695589,
	-0.15467379, 0.20142994, 0.78103121, 0.20142994, -0.15467379, 0.091695589,
	-0.029378426, -0.017471433, 0.04067979, -0.040517334, 0.024337429, -0.0028828221,
	-0.014065062, 0.020952033, -0.017542701, 0.0077719369, 0.0027925343, -0.0095949717,
	0.01073995, -0.007161319, 0.0015529361, 0.003209142, -0.0053502515, 0.0046860648,
	-0.0022857668, -0.00033656416, 0.0020132456, -0.0023360863, 0.0016030541, -0.00045953362,
	-0.00050022589, 0.00096588015, -0.00092423777, 0.00053539778, -3.9069288e-19,
}

// CoeffChannelSSB is a non-decimating (÷1) channel-shaping filter at 16000Hz, cutoff 3000Hz.
var CoeffChannelSSB = []float32{
	-1.1707812e-18, -0.00078081561, -0.0006672828, 0.00041970896, 0.0013090061, 0.00060666368,
	-0.0013652179, -0.0021717792, 3.142536e-18, 0.0031768473, 0.002913353, -0.0018766282,
	-0.0057992791, -0.0026088985, 0.0056366103, 0.0085711313, -7.9027732e-18, -0.011483885,
	-0.010135915, 0.0063182602, 0.019014997, 0.0083906601, -0.017926803, -0.027211113,
	1.266301e-17, 0.037667575, 0.034644355, -0.023065307, -0.076878345, -0.039844965,
	0.11167165, 0.29376222, 0.37542638, 0.29376222, 0.11167165, -0.039844965,
	-0.076878345, -0.023065307, 0.034644355, 0.037667575, 1.266301e-17, -0.027211113,
	-0.017926803, 0.0083906601, 0.019014997, 0.0063182602, -0.010135915, -0.011483885,
	-7.9027732e-18, 0.0085711313, 0.0056366103, -0.0026088985, -0.0057992791, -0.0018766282,
	0.002913353, 0.0031768473, 3.142536e-18, -0.0021717792, -0.0013652179, 0.00060666368,
	0.0013090061, 0.00041970896, -0.0006672828, -0.00078081561, -1.1707812e-18,
}
