package correction

// Priority is the fixed order in which categories are tried.
// It decides ties between overlapping ranges and allow-lists.
var Priority = []string{"hd", "hr", "ha", "he", "ea", "fa", "ch", "cp", "cc", "ca", "lg", "sh", "wa"}

// AllowLists holds the ids curated as genuinely belonging to each category.
var AllowLists = map[string][]int{
	// faces
	"hd": {
		180, 185, 190, 195, 200, 205, 206, 207, 208, 209, 3091, 3092, 3093, 3094, 3095, 3101, 3102,
		3103, 3536, 3537, 3600, 3603, 3604, 3631, 3704, 3721, 3813, 3814, 3845, 3956, 3997, 4015,
		4023, 4163, 4174, 4202, 4203, 4204, 4205, 4206, 4266, 4267, 4268, 4279, 4280, 4287, 4383,
	},
	// hair
	"hr": {
		100, 105, 110, 115, 125, 135, 145, 155, 165, 170, 676, 677, 678, 679, 681, 802, 828, 829,
		830, 831, 889, 891, 892, 893, 3011, 3020, 3021, 3025, 3041, 3043, 3048, 3056, 3090, 3162,
		3163, 3172, 3194, 3247, 3256, 3260, 3278, 3281, 3777,
	},
	// hats and helmets
	"ha": {
		1001, 1002, 1003, 1004, 1005, 1006, 1007, 1008, 1009, 1010, 1011, 1012, 1013, 1014, 1015,
		1016, 1017, 1018, 1019, 1020, 1021, 1022, 1023, 1024, 1025, 1026, 1027, 3026, 3054, 3086,
		3117, 3118, 3129, 3130, 3139, 3140, 3144, 3145, 3150, 3156, 3171, 3173, 3179, 3209, 3231,
		3236, 3238, 3240, 3241, 3242, 3243, 3253, 3254, 3259, 3261, 3265, 3268, 3272, 3291, 3298,
		3300, 3305, 3451,
	},
	// head accessories
	"he": {
		1601, 1602, 1603, 1604, 1605, 1606, 1607, 1608, 1609, 1610, 3069, 3070, 3071, 3079, 3081,
		3082, 3146, 3149, 3155, 3164, 3181, 3189, 3218, 3227, 3228, 3229, 3239, 3258, 3274, 3295,
		3297, 3543,
	},
	// eyewear
	"ea": {
		1401, 1402, 1403, 1404, 1405, 1406, 3083, 3107, 3108, 3141, 3148, 3168, 3169, 3170, 3196,
		3224, 3226, 3262, 3270, 3318, 3388, 3484, 3493, 3574, 3575, 3576, 3577, 3578, 3639, 3640,
		3641, 3698, 3726, 3727, 3749, 3750, 3751, 3803, 3822, 3886, 3887, 3925, 3959, 3960, 3961,
		3962, 3978, 4021, 4161, 4212, 4302, 4346, 4968, 4985, 4986, 4987, 4988, 5007, 5008, 5009,
	},
	// face accessories
	"fa": {
		1201, 1202, 1203, 1204, 1205, 1206, 1207, 1208, 1209, 1210, 1211, 1212, 3147, 3193, 3230,
		3276, 3296, 3344, 3345, 3346, 3350, 3378, 3462, 3470, 3471, 3472, 3473, 3474, 3475, 3476,
		3553, 3590, 3592, 3597, 3663, 3700, 3771, 3812, 3815, 3816, 3832, 3865, 3888, 3963, 3964,
		3965, 3966, 3993, 4013, 4014, 4042, 4043, 4044, 4045, 4046, 4047, 4048, 4049, 4058, 4168,
		4185, 4211, 4283,
	},
	// shirts
	"ch": {
		210, 215, 220, 225, 230, 235, 240, 245, 250, 255, 262, 265, 266, 267, 803, 804, 805, 806,
		807, 808, 809, 875, 876, 877, 878, 3001, 3015, 3022, 3030, 3032, 3038, 3050, 3059, 3077,
		3109, 3110, 3111, 3167, 3185, 3203, 3208, 3215, 3222, 3234, 3237, 3279,
	},
	// shirt prints
	"cp": {
		3119, 3120, 3121, 3122, 3123, 3124, 3125, 3126, 3127, 3128, 3204, 3205, 3284, 3286, 3288,
		3307, 3308, 3309, 3310, 3311, 3312, 3313, 3314, 3315, 3316, 3317, 3402, 3403,
	},
	// jackets
	"cc": {
		260, 886, 887, 3002, 3007, 3009, 3039, 3075, 3087, 3152, 3153, 3158, 3186, 3232, 3246, 3269,
		3280, 3289, 3294, 3299,
	},
	// chest accessories
	"ca": {
		1801, 1802, 1803, 1804, 1805, 1806, 1807, 1808, 1809, 1810, 1811, 1812, 1813, 1814, 1815,
		1816, 1817, 1818, 1819, 3084, 3085, 3131, 3151, 3175, 3176, 3177, 3187, 3217, 3219, 3223,
		3225, 3292, 3511,
	},
	// trousers
	"lg": {
		270, 275, 280, 281, 285, 695, 696, 700, 705, 710, 715, 716, 720, 827, 3017, 3023, 3057, 3058,
		3078, 3088, 3116, 3136, 3138, 3202, 3216, 3257, 3290, 6290,
	},
	// shoes
	"sh": {
		290, 295, 300, 305, 905, 906, 908, 3016, 3027, 3035, 3068, 3089, 3115, 3154, 3206, 3252,
		3275, 3338, 3348, 3354, 3375, 3383, 3419, 3435, 3467, 3524, 3587, 3595, 3611, 3619, 3621,
		3687, 3693, 3719, 3720, 3783, 4016, 4030, 4064, 4065, 4112, 4159,
	},
	// belts
	"wa": {
		2001, 2002, 2003, 2004, 2005, 2006, 2007, 2008, 2009, 2011, 2012, 3072, 3073, 3074, 3080,
		3211, 3212, 3263, 3264, 3359, 3366, 3427, 3504, 3661, 3773, 3798, 3872, 3895, 4040, 4060,
		4317,
	},
}

// Ranges holds the id ranges historically associated with each category.
var Ranges = map[string][]Range{
	"hd": {{180, 209}, {600, 629}, {3091, 3106}},
	"hr": {{100, 170}, {676, 679}, {802, 893}},
	"ha": {{1001, 1027}, {3451, 3500}},
	"he": {{1601, 1610}},
	"ea": {{1401, 1406}},
	"fa": {{1201, 1212}},
	"ch": {{210, 267}, {800, 878}},
	"cp": {{3119, 3128}, {3284, 3317}, {3402, 3403}},
	"cc": {{260, 260}, {886, 887}},
	"ca": {{1801, 1819}},
	"lg": {{270, 285}, {695, 720}},
	"sh": {{290, 305}, {905, 908}},
	"wa": {{2001, 2012}},
}

// DenyList holds ids that never render on the imaging service.
var DenyList = []int{
	1, 2, 3, 4, 5, 7, 2113, 2114, 2115, 2116, 2131, 2132, 2135, 2136, 2137, 2142, 2238, 2242,
	2255, 2269, 2270, 2296, 2306, 2307, 2308, 2309, 2364, 2379, 2380, 2381, 2395, 2434, 2435,
	2470, 2503, 2504, 2506, 2545, 2546, 2547, 2558, 2559, 2560, 2606, 2607, 2641, 2642, 2643,
	2650, 2651, 2652, 2667, 2668, 2669, 2690, 2691, 2692, 2801, 2802, 2807, 2937, 2942, 2943,
	2944, 2945, 2946, 2947, 2954, 2955, 2956, 2957, 2958, 2959, 2979, 2980, 3076, 3104, 3105,
	3106, 3207, 3235, 3282, 3283, 3325, 3326, 3336, 3337, 3432, 3433, 3434, 3465, 3513, 3514,
	3532, 3551, 3557, 3558, 3559, 3566, 3567, 3568, 3569, 3570, 3571, 3572, 3602, 3688, 3714,
	3766, 3767, 3768, 3809, 3810, 3811, 3979, 3980, 4028, 4029, 4256, 4257, 4260, 4319, 4321,
	4323, 4324, 4325, 4326, 4327, 4329, 4338, 4339, 4371, 4372, 4373, 4382, 4407, 4408, 4409,
	4426, 4427, 4462, 4486, 4527, 4528, 4529, 4530, 4563, 4564, 4565, 4595, 4599, 4610, 4611,
	4612, 4695, 4729, 4730, 4757, 4758, 4775, 4777, 4843, 4844, 4865, 4867, 4868, 4869, 4885,
	4991, 5049, 5070, 5071, 5105, 5106, 5127, 5188, 5189, 5190, 5191, 5192, 5228, 5243, 5309,
	5310, 5331, 5372, 5373, 5397, 5412, 5413, 5442, 5443, 5444, 5445, 5462, 5500, 5614, 5615,
	5616, 5661, 5662, 5663, 5664, 5665, 5741, 5786, 5787, 5788, 5789, 5790, 5791, 5792, 5793,
	5794, 5846, 5847, 5848, 6009, 6010, 6011, 6066, 6067, 6079, 6089, 6090, 6091, 6092, 6093,
	6094, 6095, 6096, 6097, 6127, 6128, 6129, 6150, 6151, 6153, 6161, 6162, 6169, 6170, 6171,
	6177, 6178, 6179, 6180, 6181, 6182, 6183, 6184, 6185, 6186, 6187, 6188, 6189, 6190, 6191,
	6192, 6198, 6199, 6200, 6201, 6239, 6240, 6344, 6345, 6353, 6453, 6454, 6455, 6505, 6506,
	6552, 6570, 6571, 6572, 6583, 6584, 6585, 6651, 6652, 6653, 6654, 6674, 6675, 6676, 6697,
	6698, 6709, 6710, 6740, 6741, 6755, 6756, 6757, 6758, 6759, 6761, 6762, 6763, 6765, 6822,
	6823, 6842, 6854,
}
