package core

// landau[n] is Landau's function: the maximal order of an element of the
// symmetric group S_n, for 0 <= n <= 64.
var landau = [65]uint32{
	1, 1, 2, 3, 4, // 0-4
	6, 6, 12, 15, 20, // 5-9
	30, 30, 60, 60, 84, // 10-14
	105, 140, 210, 210, 420, // 15-19
	420, 420, 420, 840, 840, // 20-24
	1260, 1260, 1540, 2310, 2520, // 25-29
	4620, 4620, 5460, 5460, 9240, // 30-34
	9240, 13860, 13860, 16380, 16380, // 35-39
	27720, 30030, 32760, 60060, 60060, // 40-44
	60060, 60060, 120120, 120120, 180180, // 45-49
	180180, 180180, 180180, 360360, 360360, // 50-54
	360360, 360360, 471240, 471240, 556920, // 55-59
	1021020, 1021020, 1141140, 1141140, 2042040, // 60-64
}
