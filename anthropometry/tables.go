// Copyright (c) 2025 The Sigana Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package anthropometry

// Built-in LMS tables. Age curves are sampled sparsely; Interpolate fills the
// gaps. Weight-for-height is indexed by length/height in cm (45-120).

func builtinStandards() []GrowthStandard {
	return []GrowthStandard{
		{Male, WeightForAge, weightForAgeBoys},
		{Female, WeightForAge, weightForAgeGirls},
		{Male, HeightForAge, heightForAgeBoys},
		{Female, HeightForAge, heightForAgeGirls},
		{Male, WeightForHeight, weightForHeightBoys},
		{Female, WeightForHeight, weightForHeightGirls},
		{Male, HeadCircumferenceForAge, headCircForAgeBoys},
		{Female, HeadCircumferenceForAge, headCircForAgeGirls},
		{Male, ArmCircumferenceForAge, armCircForAgeBoys},
		{Female, ArmCircumferenceForAge, armCircForAgeGirls},
		{Male, BMIForAge, bmiForAgeBoys},
		{Female, BMIForAge, bmiForAgeGirls},
	}
}

// Weight-for-age (kg)

var weightForAgeBoys = []LMSRecord{
	{0, 0.1815, 3.3464, 0.12745},
	{1, 0.1360, 4.4709, 0.12643},
	{2, 0.0988, 5.6021, 0.12265},
	{3, 0.0688, 6.4026, 0.11822},
	{4, 0.0444, 7.0097, 0.11438},
	{5, 0.0244, 7.5029, 0.11166},
	{6, 0.0080, 7.9224, 0.11009},
	{7, -0.0055, 8.2975, 0.10946},
	{8, -0.0169, 8.6444, 0.10943},
	{9, -0.0263, 8.9719, 0.10986},
	{10, -0.0343, 9.2848, 0.11059},
	{11, -0.0410, 9.5855, 0.11149},
	{12, -0.0468, 9.8756, 0.11246},
	{18, -0.0706, 11.4582, 0.11871},
	{24, -0.0894, 12.8360, 0.12462},
	{30, -0.1064, 14.0700, 0.12984},
	{36, -0.1221, 15.2017, 0.13420},
	{42, -0.1366, 16.2570, 0.13783},
	{48, -0.1502, 17.2510, 0.14088},
	{54, -0.1630, 18.2010, 0.14347},
	{60, -0.1752, 19.1100, 0.14571},
}

var weightForAgeGirls = []LMSRecord{
	{0, 0.1548, 3.2325, 0.13670},
	{1, 0.1167, 4.1866, 0.13374},
	{2, 0.0862, 5.1282, 0.12836},
	{3, 0.0618, 5.8427, 0.12338},
	{4, 0.0422, 6.4239, 0.11953},
	{5, 0.0264, 6.9146, 0.11681},
	{6, 0.0137, 7.3450, 0.11508},
	{7, 0.0034, 7.7319, 0.11413},
	{8, -0.0051, 8.0863, 0.11379},
	{9, -0.0121, 8.4145, 0.11394},
	{10, -0.0181, 8.7214, 0.11449},
	{11, -0.0232, 9.0102, 0.11532},
	{12, -0.0275, 9.2831, 0.11631},
	{18, -0.0463, 10.7400, 0.12328},
	{24, -0.0620, 11.9700, 0.12929},
	{30, -0.0769, 13.0600, 0.13429},
	{36, -0.0913, 14.0600, 0.13842},
	{42, -0.1054, 15.0100, 0.14187},
	{48, -0.1192, 15.9300, 0.14478},
	{54, -0.1327, 16.8200, 0.14729},
	{60, -0.1460, 17.6900, 0.14950},
}

// Length/height-for-age (cm). Recumbent length up to 24 months, standing
// height after.

var heightForAgeBoys = []LMSRecord{
	{0, 1, 49.8842, 0.03795},
	{1, 1, 54.7244, 0.03568},
	{6, 1, 67.6236, 0.03284},
	{12, 1, 75.7477, 0.03399},
	{24, 1, 87.8301, 0.03541},
	{36, 1, 96.1000, 0.03580},
	{48, 1, 103.3000, 0.03610},
	{60, 1, 110.0000, 0.03640},
}

var heightForAgeGirls = []LMSRecord{
	{0, 1, 49.1477, 0.03790},
	{1, 1, 53.6872, 0.03554},
	{6, 1, 65.7311, 0.03323},
	{12, 1, 74.0163, 0.03451},
	{24, 1, 86.4153, 0.03595},
	{36, 1, 95.1000, 0.03630},
	{48, 1, 102.7000, 0.03660},
	{60, 1, 109.4000, 0.03700},
}

// Weight-for-length/height (kg), At is cm.

var weightForHeightBoys = []LMSRecord{
	{45, 0.039, 2.4, 0.08},
	{50, 0.039, 3.4, 0.08},
	{55, 0.039, 4.5, 0.08},
	{60, 0.039, 5.7, 0.08},
	{65, 0.039, 7.0, 0.08},
	{70, 0.039, 8.3, 0.08},
	{75, 0.039, 9.6, 0.08},
	{80, 0.039, 10.9, 0.08},
	{85, 0.039, 12.1, 0.08},
	{90, 0.039, 13.3, 0.08},
	{95, 0.039, 14.5, 0.08},
	{100, 0.039, 15.7, 0.08},
	{105, 0.039, 17.0, 0.08},
	{110, 0.039, 18.5, 0.08},
	{115, 0.039, 20.0, 0.08},
	{120, 0.039, 21.7, 0.08},
}

var weightForHeightGirls = []LMSRecord{
	{45, 0.039, 2.3, 0.08},
	{50, 0.039, 3.3, 0.08},
	{55, 0.039, 4.4, 0.08},
	{60, 0.039, 5.6, 0.08},
	{65, 0.039, 6.9, 0.08},
	{70, 0.039, 8.1, 0.08},
	{75, 0.039, 9.3, 0.08},
	{80, 0.039, 10.5, 0.08},
	{85, 0.039, 11.7, 0.08},
	{90, 0.039, 12.9, 0.08},
	{95, 0.039, 14.1, 0.08},
	{100, 0.039, 15.4, 0.08},
	{105, 0.039, 16.8, 0.08},
	{110, 0.039, 18.3, 0.08},
	{115, 0.039, 20.0, 0.08},
	{120, 0.039, 21.8, 0.08},
}

// Head circumference-for-age (cm)

var headCircForAgeBoys = []LMSRecord{
	{0, 1, 34.4618, 0.03686},
	{1, 1, 37.2759, 0.03133},
	{2, 1, 39.1285, 0.02997},
	{3, 1, 40.5135, 0.02918},
	{6, 1, 43.3306, 0.02789},
	{9, 1, 44.9998, 0.02750},
	{12, 1, 46.0661, 0.02740},
	{18, 1, 47.4029, 0.02759},
	{24, 1, 48.2515, 0.02785},
	{36, 1, 49.4766, 0.02834},
	{48, 1, 50.2866, 0.02876},
	{60, 1, 50.8963, 0.02912},
}

var headCircForAgeGirls = []LMSRecord{
	{0, 1, 33.8787, 0.03496},
	{1, 1, 36.5463, 0.03210},
	{2, 1, 38.2521, 0.03168},
	{3, 1, 39.5328, 0.03140},
	{6, 1, 42.1995, 0.03056},
	{9, 1, 43.7876, 0.03021},
	{12, 1, 44.8965, 0.03007},
	{18, 1, 46.2263, 0.03012},
	{24, 1, 47.1994, 0.03034},
	{36, 1, 48.4789, 0.03076},
	{48, 1, 49.3245, 0.03110},
	{60, 1, 49.9483, 0.03137},
}

// Mid-upper arm circumference-for-age (cm), tabulated from 3 months.

var armCircForAgeBoys = []LMSRecord{
	{3, 0.3928, 13.5596, 0.07890},
	{6, 0.2998, 14.4573, 0.07944},
	{9, 0.2231, 14.8762, 0.07905},
	{12, 0.1531, 15.1946, 0.07868},
	{18, 0.0512, 15.5871, 0.07797},
	{24, -0.0298, 15.8716, 0.07749},
	{36, -0.1498, 16.2836, 0.07757},
	{48, -0.2480, 16.6225, 0.07855},
	{60, -0.3302, 16.9324, 0.08027},
}

var armCircForAgeGirls = []LMSRecord{
	{3, 0.1318, 13.0221, 0.08515},
	{6, 0.0522, 13.9788, 0.08450},
	{9, -0.0197, 14.4577, 0.08399},
	{12, -0.0807, 14.8008, 0.08367},
	{18, -0.1609, 15.2612, 0.08352},
	{24, -0.2231, 15.5978, 0.08387},
	{36, -0.3109, 16.0838, 0.08537},
	{48, -0.3823, 16.4787, 0.08745},
	{60, -0.4412, 16.8228, 0.08972},
}

// BMI-for-age (kg/m²)

var bmiForAgeBoys = []LMSRecord{
	{0, -0.3053, 13.4069, 0.09560},
	{1, 0.2708, 14.9441, 0.09027},
	{2, 0.1118, 16.3195, 0.08677},
	{3, 0.0068, 16.8987, 0.08495},
	{6, -0.1600, 17.3422, 0.08200},
	{9, -0.2300, 17.1494, 0.08163},
	{12, -0.2900, 16.8500, 0.08100},
	{18, -0.3600, 16.4000, 0.08020},
	{24, -0.4100, 16.0200, 0.07970},
	{36, -0.4900, 15.6500, 0.07970},
	{48, -0.5700, 15.3600, 0.08050},
	{60, -0.6200, 15.2200, 0.08200},
}

var bmiForAgeGirls = []LMSRecord{
	{0, -0.0631, 13.3363, 0.09272},
	{1, 0.3448, 14.5679, 0.09556},
	{2, 0.1749, 15.7679, 0.09371},
	{3, 0.0643, 16.3574, 0.09254},
	{6, -0.1100, 16.9000, 0.08980},
	{9, -0.1900, 16.7200, 0.08850},
	{12, -0.2500, 16.4000, 0.08770},
	{18, -0.3300, 15.9500, 0.08680},
	{24, -0.4000, 15.7000, 0.08620},
	{36, -0.5000, 15.4000, 0.08630},
	{48, -0.5900, 15.2300, 0.08800},
	{60, -0.6600, 15.2500, 0.09050},
}
