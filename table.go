// Code generated from an exact decimal expansion of each power of ten;
// DO NOT EDIT by hand. The generator is not part of this module
// (cmd/errolgen writes only correctiondata.go).

package errol

import "math"

// powersOfTen holds 630 precomputed hp values. powersOfTen[k] approximates
// 10^(307-k) as an hp pair accurate to roughly 106 significant bits, for k in
// [0, 630). Index 307 holds unity; indices below it hold the large powers used
// to scale small-magnitude doubles up into [1,10), indices above it hold the
// small (subnormal-range) powers used to scale large-magnitude doubles down.
var powersOfTen = [630]hp{
	{1.0e+307, 1.3968940239743542e+290}, // 10^307
	{1.0e+306, -1.7216064596736455e+289}, // 10^306
	{1.0e+305, 6.074644749446354e+288}, // 10^305
	{1.0e+304, 6.0746447494463536e+287}, // 10^304
	{1.0e+303, -1.6176507678645645e+284}, // 10^303
	{1.0e+302, -7.629703079084895e+285}, // 10^302
	{1.0e+301, -5.250476025520442e+284}, // 10^301
	{1.0e+300, -5.250476025520442e+283}, // 10^300
	{1.0e+299, -5.250476025520442e+282}, // 10^299
	{1.0e+298, 4.043379652465702e+281}, // 10^298
	{1.0e+297, -1.765280146275638e+280}, // 10^297
	{1.0e+296, 1.8651322279376996e+279}, // 10^296
	{1.0e+295, 1.8651322279376996e+278}, // 10^295
	{1.0e+294, -6.64364677412481e+277}, // 10^294
	{1.0e+293, 7.53765156264604e+276}, // 10^293
	{1.0e+292, -1.3256598978357416e+275}, // 10^292
	{1.0e+291, 4.2139097649653716e+274}, // 10^291
	{1.0e+290, -6.172783352786716e+273}, // 10^290
	{1.0e+289, -6.172783352786716e+272}, // 10^289
	{1.0e+288, -7.6304735395750355e+270}, // 10^288
	{1.0e+287, -7.525217352494019e+270}, // 10^287
	{1.0e+286, -3.2988611034086966e+269}, // 10^286
	{1.0e+285, 1.9840842079479558e+268}, // 10^285
	{1.0e+284, -7.921438250845768e+267}, // 10^284
	{1.0e+283, 4.460464822646387e+266}, // 10^283
	{1.0e+282, -3.27822459828621e+265}, // 10^282
	{1.0e+281, -3.2782245982862097e+264}, // 10^281
	{1.0e+280, -3.27822459828621e+263}, // 10^280
	{1.0e+279, -5.797329227496039e+262}, // 10^279
	{1.0e+278, 3.6493131320408215e+261}, // 10^278
	{1.0e+277, -2.8678785109953724e+259}, // 10^277
	{1.0e+276, -5.2069140800249854e+259}, // 10^276
	{1.0e+275, 4.01832259921023e+258}, // 10^275
	{1.0e+274, 7.862171215558236e+257}, // 10^274
	{1.0e+273, 5.459765830340733e+256}, // 10^273
	{1.0e+272, -6.552261095746788e+255}, // 10^272
	{1.0e+271, 4.709014147460262e+254}, // 10^271
	{1.0e+270, -4.675381888545613e+253}, // 10^270
	{1.0e+269, -4.675381888545613e+252}, // 10^269
	{1.0e+268, 2.6561775145839774e+251}, // 10^268
	{1.0e+267, 2.6561775145839772e+250}, // 10^267
	{1.0e+266, -3.071603269111015e+249}, // 10^266
	{1.0e+265, -6.651466258920385e+248}, // 10^265
	{1.0e+264, -4.414051890289529e+247}, // 10^264
	{1.0e+263, -1.6172839295009584e+246}, // 10^263
	{1.0e+262, -1.6172839295009582e+245}, // 10^262
	{1.0e+261, 7.122615947963324e+244}, // 10^261
	{1.0e+260, -6.5334776105746174e+243}, // 10^260
	{1.0e+259, 7.122615947963324e+242}, // 10^259
	{1.0e+258, -5.679971763165996e+241}, // 10^258
	{1.0e+257, -3.0127659900140542e+240}, // 10^257
	{1.0e+256, -3.012765990014054e+239}, // 10^256
	{1.0e+255, 1.1547430305358546e+238}, // 10^255
	{1.0e+254, 6.364129306223241e+237}, // 10^254
	{1.0e+253, 6.364129306223241e+236}, // 10^253
	{1.0e+252, -9.915202805299841e+235}, // 10^252
	{1.0e+251, -4.827911520448878e+234}, // 10^251
	{1.0e+250, 7.89031669167853e+233}, // 10^250
	{1.0e+249, 7.89031669167853e+232}, // 10^249
	{1.0e+248, -4.529828046727142e+231}, // 10^248
	{1.0e+247, 4.785280507077112e+230}, // 10^247
	{1.0e+246, -6.858605185178205e+229}, // 10^246
	{1.0e+245, -4.432795665958348e+228}, // 10^245
	{1.0e+244, -7.4650575649831695e+227}, // 10^244
	{1.0e+243, -7.46505756498317e+226}, // 10^243
	{1.0e+242, -5.0961029563700274e+225}, // 10^242
	{1.0e+241, -5.096102956370027e+224}, // 10^241
	{1.0e+240, -1.3946113804119925e+223}, // 10^240
	{1.0e+239, 9.188208545617794e+221}, // 10^239
	{1.0e+238, -4.86475973287265e+221}, // 10^238
	{1.0e+237, 5.979453868566905e+220}, // 10^237
	{1.0e+236, -5.316601966265965e+219}, // 10^236
	{1.0e+235, -5.316601966265965e+218}, // 10^235
	{1.0e+234, -1.7865845178806931e+217}, // 10^234
	{1.0e+233, 2.6259372926008967e+216}, // 10^233
	{1.0e+232, -5.647541102052084e+215}, // 10^232
	{1.0e+231, -5.647541102052084e+214}, // 10^231
	{1.0e+230, -9.956644432600512e+213}, // 10^230
	{1.0e+229, 8.161138937705572e+211}, // 10^229
	{1.0e+228, 7.549087847752475e+211}, // 10^228
	{1.0e+227, -9.28334703720232e+210}, // 10^227
	{1.0e+226, 3.866992716668614e+209}, // 10^226
	{1.0e+225, 7.154577655136347e+208}, // 10^225
	{1.0e+224, 3.0450964820516807e+207}, // 10^224
	{1.0e+223, -4.6601807174820696e+206}, // 10^223
	{1.0e+222, -4.66018071748207e+205}, // 10^222
	{1.0e+221, -4.6601807174820695e+204}, // 10^221
	{1.0e+220, 3.562757926310489e+202}, // 10^220
	{1.0e+219, 3.491561111451748e+202}, // 10^219
	{1.0e+218, -8.265758834125874e+201}, // 10^218
	{1.0e+217, 3.9814494425174824e+200}, // 10^217
	{1.0e+216, -2.142154695804196e+199}, // 10^216
	{1.0e+215, 9.33960306354895e+198}, // 10^215
	{1.0e+214, 4.55553733048514e+197}, // 10^214
	{1.0e+213, 1.5654962473202578e+196}, // 10^213
	{1.0e+212, 9.040598955232462e+195}, // 10^212
	{1.0e+211, 4.368659762787335e+194}, // 10^211
	{1.0e+210, 7.288621758065539e+193}, // 10^210
	{1.0e+209, -7.311188218325486e+192}, // 10^209
	{1.0e+208, 1.8136930169189052e+191}, // 10^208
	{1.0e+207, -3.889357755108839e+190}, // 10^207
	{1.0e+206, -3.889357755108839e+189}, // 10^206
	{1.0e+205, -1.6616035472855014e+188}, // 10^205
	{1.0e+204, 1.1230892124936706e+187}, // 10^204
	{1.0e+203, 1.1230892124936706e+186}, // 10^203
	{1.0e+202, 9.825254086803583e+185}, // 10^202
	{1.0e+201, -3.771878529305655e+184}, // 10^201
	{1.0e+200, 3.0266877787489637e+183}, // 10^200
	{1.0e+199, -9.720624048853447e+182}, // 10^199
	{1.0e+198, -1.75355415660194e+181}, // 10^198
	{1.0e+197, 4.885670753607649e+180}, // 10^197
	{1.0e+196, 4.885670753607649e+179}, // 10^196
	{1.0e+195, 2.292223523057028e+178}, // 10^195
	{1.0e+194, 5.534032561245304e+177}, // 10^194
	{1.0e+193, -6.622751331960731e+176}, // 10^193
	{1.0e+192, -4.09008802087614e+175}, // 10^192
	{1.0e+191, -7.2559171597318776e+174}, // 10^191
	{1.0e+190, -7.255917159731878e+173}, // 10^190
	{1.0e+189, -2.309309130269787e+172}, // 10^189
	{1.0e+188, -2.309309130269787e+171}, // 10^188
	{1.0e+187, 9.284303438781988e+170}, // 10^187
	{1.0e+186, 2.0382955831246284e+169}, // 10^186
	{1.0e+185, 2.0382955831246285e+168}, // 10^185
	{1.0e+184, -1.735666841696913e+167}, // 10^184
	{1.0e+183, 5.340512704843477e+166}, // 10^183
	{1.0e+182, -6.453119872723839e+165}, // 10^182
	{1.0e+181, 8.288920849235307e+164}, // 10^181
	{1.0e+180, -9.248546019891598e+162}, // 10^180
	{1.0e+179, 1.954450226518486e+162}, // 10^179
	{1.0e+178, -5.243811844750628e+161}, // 10^178
	{1.0e+177, -7.44898050207432e+159}, // 10^177
	{1.0e+176, -7.44898050207432e+158}, // 10^176
	{1.0e+175, 6.284654753766313e+158}, // 10^175
	{1.0e+174, -6.895756753684458e+157}, // 10^174
	{1.0e+173, -1.4039186255799706e+156}, // 10^173
	{1.0e+172, -8.2687162857105805e+155}, // 10^172
	{1.0e+171, 4.602779327034313e+154}, // 10^171
	{1.0e+170, -3.441905430931245e+153}, // 10^170
	{1.0e+169, 6.613950516525703e+152}, // 10^169
	{1.0e+168, 6.613950516525703e+151}, // 10^168
	{1.0e+167, -3.860899428741951e+150}, // 10^167
	{1.0e+166, 5.959272394946475e+149}, // 10^166
	{1.0e+165, 1.0051010654816651e+149}, // 10^165
	{1.0e+164, -1.7833499485879184e+146}, // 10^164
	{1.0e+163, 6.21500603618836e+146}, // 10^163
	{1.0e+162, 6.21500603618836e+145}, // 10^162
	{1.0e+161, -3.774589324822815e+144}, // 10^161
	{1.0e+160, -6.528407745068227e+142}, // 10^160
	{1.0e+159, 7.151530601283158e+142}, // 10^159
	{1.0e+158, 4.712664546348789e+141}, // 10^158
	{1.0e+157, 1.6640819776808279e+140}, // 10^157
	{1.0e+156, 1.6640819776808277e+139}, // 10^156
	{1.0e+155, -7.176231540910168e+137}, // 10^155
	{1.0e+154, -3.6947545688058227e+137}, // 10^154
	{1.0e+153, 2.6659699587684626e+134}, // 10^153
	{1.0e+152, -4.6251081359041995e+135}, // 10^152
	{1.0e+151, -1.717753238721772e+134}, // 10^151
	{1.0e+150, 1.9164403827562624e+133}, // 10^150
	{1.0e+149, -4.897672657515052e+132}, // 10^149
	{1.0e+148, -4.897672657515052e+131}, // 10^148
	{1.0e+147, 2.200361759434234e+130}, // 10^147
	{1.0e+146, 6.636633270027537e+129}, // 10^146
	{1.0e+145, 1.091293881785908e+128}, // 10^145
	{1.0e+144, -2.3745432358651106e+127}, // 10^144
	{1.0e+143, -2.3745432358651105e+126}, // 10^143
	{1.0e+142, -5.082228484029969e+125}, // 10^142
	{1.0e+141, -1.697621923823896e+124}, // 10^141
	{1.0e+140, -5.928380124081487e+123}, // 10^140
	{1.0e+139, -3.2841562489204925e+122}, // 10^139
	{1.0e+138, -3.2841562489204927e+121}, // 10^138
	{1.0e+137, -3.2841562489204925e+120}, // 10^137
	{1.0e+136, -5.866406127007401e+119}, // 10^136
	{1.0e+135, 3.817030915818506e+118}, // 10^135
	{1.0e+134, 7.851796350329301e+117}, // 10^134
	{1.0e+133, -2.235117235947686e+116}, // 10^133
	{1.0e+132, 9.170432597638724e+114}, // 10^132
	{1.0e+131, 8.797444499042768e+114}, // 10^131
	{1.0e+130, -5.978307824605161e+113}, // 10^130
	{1.0e+129, 1.7825564358147585e+111}, // 10^129
	{1.0e+128, -7.51744869165182e+111}, // 10^128
	{1.0e+127, 4.5070893321502055e+110}, // 10^127
	{1.0e+126, 7.513223838100712e+109}, // 10^126
	{1.0e+125, 7.513223838100712e+108}, // 10^125
	{1.0e+124, 5.1646812553268785e+107}, // 10^124
	{1.0e+123, 2.229003026859587e+106}, // 10^123
	{1.0e+122, -1.4405947587245274e+105}, // 10^122
	{1.0e+121, -3.734093374714599e+104}, // 10^121
	{1.0e+120, 1.9996531652605798e+103}, // 10^120
	{1.0e+119, 5.583244752745067e+102}, // 10^119
	{1.0e+118, 3.343500010567262e+101}, // 10^118
	{1.0e+117, -5.0555427725995036e+100}, // 10^117
	{1.0e+116, -1.5559416129466843e+99}, // 10^116
	{1.0e+115, -1.5559416129466843e+98}, // 10^115
	{1.0e+114, -1.5559416129466843e+97}, // 10^114
	{1.0e+113, -1.5559416129466842e+96}, // 10^113
	{1.0e+112, 6.988006530736956e+95}, // 10^112
	{1.0e+111, 4.318022735835818e+94}, // 10^111
	{1.0e+110, -2.3569367514170256e+93}, // 10^110
	{1.0e+109, 1.814912928116002e+92}, // 10^109
	{1.0e+108, -3.399899171300283e+91}, // 10^108
	{1.0e+107, 3.118615952970073e+90}, // 10^107
	{1.0e+106, -9.103599905036844e+89}, // 10^106
	{1.0e+105, 6.174169917471802e+88}, // 10^105
	{1.0e+104, -1.9156750857346687e+86}, // 10^104
	{1.0e+103, -1.915675085734669e+85}, // 10^103
	{1.0e+102, 2.2950486734754662e+85}, // 10^102
	{1.0e+101, 2.295048673475466e+84}, // 10^101
	{1.0e+100, -1.5902891109759918e+83}, // 10^100
	{1.0e+99, 3.266383119588331e+82}, // 10^99
	{1.0e+98, 2.309629754856292e+80}, // 10^98
	{1.0e+97, -7.357587384771125e+80}, // 10^97
	{1.0e+96, -4.9861653971908895e+79}, // 10^96
	{1.0e+95, -2.0218879127155947e+78}, // 10^95
	{1.0e+94, -2.0218879127155946e+77}, // 10^94
	{1.0e+93, -4.3377296974619187e+76}, // 10^93
	{1.0e+92, -4.337729697461919e+75}, // 10^92
	{1.0e+91, -7.95623248612805e+74}, // 10^91
	{1.0e+90, 3.35158872845361e+73}, // 10^90
	{1.0e+89, 5.246334248081951e+71}, // 10^89
	{1.0e+88, 4.0583275543649637e+71}, // 10^88
	{1.0e+87, 4.058327554364964e+70}, // 10^87
	{1.0e+86, -1.4630695230674873e+69}, // 10^86
	{1.0e+85, -1.4630695230674873e+68}, // 10^85
	{1.0e+84, -5.77666098981159e+67}, // 10^84
	{1.0e+83, -3.0806663230965258e+66}, // 10^83
	{1.0e+82, 3.6593203436911345e+65}, // 10^82
	{1.0e+81, 7.871812010433421e+64}, // 10^81
	{1.0e+80, -2.6609864708367274e+61}, // 10^80
	{1.0e+79, 3.2643992499340446e+62}, // 10^79
	{1.0e+78, -8.493621433689703e+60}, // 10^78
	{1.0e+77, 1.721738727445414e+60}, // 10^77
	{1.0e+76, -4.706013449590547e+59}, // 10^76
	{1.0e+75, 7.34602188235188e+58}, // 10^75
	{1.0e+74, 4.8351811881972075e+57}, // 10^74
	{1.0e+73, 1.6966303205038675e+56}, // 10^73
	{1.0e+72, 5.619818905120543e+55}, // 10^72
	{1.0e+71, -4.1881525564211456e+54}, // 10^71
	{1.0e+70, -7.253143638152923e+53}, // 10^70
	{1.0e+69, -7.253143638152923e+52}, // 10^69
	{1.0e+68, 4.719477774861833e+51}, // 10^68
	{1.0e+67, 1.726322421608144e+50}, // 10^67
	{1.0e+66, 5.467766613175255e+49}, // 10^66
	{1.0e+65, 7.909613737163662e+47}, // 10^65
	{1.0e+64, -2.1320419009454396e+47}, // 10^64
	{1.0e+63, -5.785795994272697e+46}, // 10^63
	{1.0e+62, -3.5021996859431613e+45}, // 10^62
	{1.0e+61, 5.061286470292598e+44}, // 10^61
	{1.0e+60, 5.061286470292598e+43}, // 10^60
	{1.0e+59, 2.831211950439536e+42}, // 10^59
	{1.0e+58, 5.618805100255864e+41}, // 10^58
	{1.0e+57, -4.834669211555366e+40}, // 10^57
	{1.0e+56, -9.190283508143379e+39}, // 10^56
	{1.0e+55, -1.0235067020408552e+38}, // 10^55
	{1.0e+54, -7.829154040459625e+37}, // 10^54
	{1.0e+53, 6.779051325638373e+35}, // 10^53
	{1.0e+52, 6.779051325638372e+34}, // 10^52
	{1.0e+51, 6.779051325638372e+33}, // 10^51
	{1.0e+50, -7.629769841091887e+33}, // 10^50
	{1.0e+49, 5.3509723052451824e+32}, // 10^49
	{1.0e+48, -4.38458430450762e+31}, // 10^48
	{1.0e+47, -4.38458430450762e+30}, // 10^47
	{1.0e+46, 6.860180964052979e+28}, // 10^46
	{1.0e+45, 7.024271097546445e+28}, // 10^45
	{1.0e+44, -8.821361405306423e+27}, // 10^44
	{1.0e+43, -1.393721169594141e+26}, // 10^43
	{1.0e+42, -4.488571267807592e+25}, // 10^42
	{1.0e+41, -6.200086450407783e+23}, // 10^41
	{1.0e+40, -3.037860284270037e+23}, // 10^40
	{1.0e+39, 6.029083362839682e+22}, // 10^39
	{1.0e+38, 2.251190176543966e+21}, // 10^38
	{1.0e+37, 4.6123734179787886e+20}, // 10^37
	{1.0e+36, -4.242063737401796e+19}, // 10^36
	{1.0e+35, 3.1366338920820244e+18}, // 10^35
	{1.0e+34, 5.4424769012957184e+17}, // 10^34
	{1.0e+33, 5.442476901295718e+16}, // 10^33
	{1.0e+32, -5366162204393472.0}, // 10^32
	{1.0e+31, 364103705034752.0}, // 10^31
	{1.0e+30, -19884624838656.0}, // 10^30
	{1.0e+29, 8566849142784.0}, // 10^29
	{1.0e+28, 416880263168.0}, // 10^28
	{1.0e+27, -13287555072.0}, // 10^27
	{1.0e+26, -4764729344.0}, // 10^26
	{1.0e+25, -905969664.0}, // 10^25
	{1.0e+24, 16777216.0}, // 10^24
	{1.0e+23, 8388608.0}, // 10^23
	{1.0e+22, 0}, // 10^22
	{1.0e+21, 0}, // 10^21
	{1.0e+20, 0}, // 10^20
	{1.0e+19, 0}, // 10^19
	{1.0e+18, 0}, // 10^18
	{1.0e+17, 0}, // 10^17
	{1.0e+16, 0}, // 10^16
	{1000000000000000.0, 0}, // 10^15
	{100000000000000.0, 0}, // 10^14
	{10000000000000.0, 0}, // 10^13
	{1000000000000.0, 0}, // 10^12
	{100000000000.0, 0}, // 10^11
	{10000000000.0, 0}, // 10^10
	{1000000000.0, 0}, // 10^9
	{100000000.0, 0}, // 10^8
	{10000000.0, 0}, // 10^7
	{1000000.0, 0}, // 10^6
	{100000.0, 0}, // 10^5
	{10000.0, 0}, // 10^4
	{1000.0, 0}, // 10^3
	{100.0, 0}, // 10^2
	{10.0, 0}, // 10^1
	{1.0, 0}, // 10^0
	{0.1, -5.551115123125783e-18}, // 10^-1
	{0.01, -2.0816681711721684e-19}, // 10^-2
	{0.001, -2.0816681711721686e-20}, // 10^-3
	{0.0001, -4.79217360238593e-21}, // 10^-4
	{1.0e-05, -8.180305391403131e-22}, // 10^-5
	{1.0e-06, 4.525188817411374e-23}, // 10^-6
	{1.0e-07, 4.525188817411374e-24}, // 10^-7
	{1.0e-08, -2.092256083012847e-25}, // 10^-8
	{1.0e-09, -6.228159145777985e-26}, // 10^-9
	{1.0e-10, -3.643219731549774e-27}, // 10^-10
	{1.0e-11, 6.050303071806019e-28}, // 10^-11
	{1.0e-12, 2.0113352370744385e-29}, // 10^-12
	{1.0e-13, -3.037374556340037e-30}, // 10^-13
	{1.0e-14, 1.1806906454401013e-32}, // 10^-14
	{1.0e-15, -7.770539987666108e-32}, // 10^-15
	{1.0e-16, 2.0902213275965398e-33}, // 10^-16
	{1.0e-17, -7.154242405462192e-34}, // 10^-17
	{1.0e-18, -7.154242405462193e-35}, // 10^-18
	{1.0e-19, 2.475407316473987e-36}, // 10^-19
	{1.0e-20, 5.484672854579043e-37}, // 10^-20
	{1.0e-21, 9.246254777210363e-38}, // 10^-21
	{1.0e-22, -4.859677432657087e-39}, // 10^-22
	{1.0e-23, 3.956530198510069e-40}, // 10^-23
	{1.0e-24, 7.629950044829718e-41}, // 10^-24
	{1.0e-25, -3.849486974919184e-42}, // 10^-25
	{1.0e-26, -3.849486974919184e-43}, // 10^-26
	{1.0e-27, -3.849486974919184e-44}, // 10^-27
	{1.0e-28, 2.876745653839938e-45}, // 10^-28
	{1.0e-29, 5.679342582489572e-46}, // 10^-29
	{1.0e-30, -8.333642060758599e-47}, // 10^-30
	{1.0e-31, -8.333642060758598e-48}, // 10^-31
	{1.0e-32, -5.59673099762419e-49}, // 10^-32
	{1.0e-33, -5.596730997624191e-50}, // 10^-33
	{1.0e-34, 7.232539610818348e-51}, // 10^-34
	{1.0e-35, -7.8575451945823805e-53}, // 10^-35
	{1.0e-36, 5.8961572557722515e-53}, // 10^-36
	{1.0e-37, -6.632427322784916e-54}, // 10^-37
	{1.0e-38, 3.8080598260127236e-55}, // 10^-38
	{1.0e-39, 7.070712060011985e-56}, // 10^-39
	{1.0e-40, 7.070712060011986e-57}, // 10^-40
	{1.0e-41, -5.761291134237854e-59}, // 10^-41
	{1.0e-42, -3.76231293568869e-59}, // 10^-42
	{1.0e-43, -7.745042713519821e-60}, // 10^-43
	{1.0e-44, 4.700987842202463e-61}, // 10^-44
	{1.0e-45, 1.589480203271892e-62}, // 10^-45
	{1.0e-46, -2.2999043453913218e-63}, // 10^-46
	{1.0e-47, 2.5618263404376953e-64}, // 10^-47
	{1.0e-48, 2.5618263404376953e-65}, // 10^-48
	{1.0e-49, 6.360053438741615e-66}, // 10^-49
	{1.0e-50, -7.616223705782342e-68}, // 10^-50
	{1.0e-51, -7.616223705782343e-69}, // 10^-51
	{1.0e-52, -7.616223705782342e-70}, // 10^-52
	{1.0e-53, -3.0798762147578723e-70}, // 10^-53
	{1.0e-54, -3.079876214757873e-71}, // 10^-54
	{1.0e-55, 5.423954167728123e-73}, // 10^-55
	{1.0e-56, -3.9854441226405437e-73}, // 10^-56
	{1.0e-57, 4.504255013759499e-74}, // 10^-57
	{1.0e-58, -2.57049426657387e-75}, // 10^-58
	{1.0e-59, -2.57049426657387e-76}, // 10^-59
	{1.0e-60, 2.9566536086865743e-77}, // 10^-60
	{1.0e-61, -3.9522812353889814e-78}, // 10^-61
	{1.0e-62, -3.9522812353889814e-79}, // 10^-62
	{1.0e-63, -6.651083908855995e-80}, // 10^-63
	{1.0e-64, 3.469426116645307e-81}, // 10^-64
	{1.0e-65, 7.686305293937516e-82}, // 10^-65
	{1.0e-66, 2.415206322322255e-83}, // 10^-66
	{1.0e-67, 5.709643179581793e-84}, // 10^-67
	{1.0e-68, -6.644495035141476e-85}, // 10^-68
	{1.0e-69, 3.650620143794582e-86}, // 10^-69
	{1.0e-70, 4.3339665037706365e-88}, // 10^-70
	{1.0e-71, 8.476455383920859e-88}, // 10^-71
	{1.0e-72, 3.4495436754559866e-89}, // 10^-72
	{1.0e-73, 3.077238576654419e-91}, // 10^-73
	{1.0e-74, 4.234998629903623e-91}, // 10^-74
	{1.0e-75, 4.2349986299036234e-92}, // 10^-75
	{1.0e-76, 7.303182045714702e-93}, // 10^-76
	{1.0e-77, 7.303182045714702e-94}, // 10^-77
	{1.0e-78, 1.1212716490748558e-96}, // 10^-78
	{1.0e-79, 1.1212716490748559e-97}, // 10^-79
	{1.0e-80, 3.857468248661244e-97}, // 10^-80
	{1.0e-81, 3.857468248661244e-98}, // 10^-81
	{1.0e-82, 3.8574682486612444e-99}, // 10^-82
	{1.0e-83, -3.4576510555453157e-100}, // 10^-83
	{1.0e-84, -3.457651055545316e-101}, // 10^-84
	{1.0e-85, 2.2572859008660592e-102}, // 10^-85
	{1.0e-86, -8.458220892405268e-103}, // 10^-86
	{1.0e-87, -1.761029146610689e-104}, // 10^-87
	{1.0e-88, 6.6104605356325366e-105}, // 10^-88
	{1.0e-89, -3.853901567171495e-106}, // 10^-89
	{1.0e-90, 5.062493089968514e-108}, // 10^-90
	{1.0e-91, -2.2188449886083652e-108}, // 10^-91
	{1.0e-92, 1.1875228833981554e-109}, // 10^-92
	{1.0e-93, 9.703442563414457e-110}, // 10^-93
	{1.0e-94, 4.380992763404269e-111}, // 10^-94
	{1.0e-95, 1.0544616383979008e-112}, // 10^-95
	{1.0e-96, 9.37078945091382e-113}, // 10^-96
	{1.0e-97, -3.623472756142304e-114}, // 10^-97
	{1.0e-98, 6.122223899149789e-115}, // 10^-98
	{1.0e-99, -1.9991899802602883e-116}, // 10^-99
	{1.0e-100, -1.9991899802602883e-117}, // 10^-100
	{1.0e-101, -5.17161727690485e-118}, // 10^-101
	{1.0e-102, 6.724985085512256e-119}, // 10^-102
	{1.0e-103, 4.246526260008692e-120}, // 10^-103
	{1.0e-104, 7.344599791888147e-121}, // 10^-104
	{1.0e-105, 3.4720078770388284e-122}, // 10^-105
	{1.0e-106, 5.892377823819652e-123}, // 10^-106
	{1.0e-107, -1.585470431324074e-125}, // 10^-107
	{1.0e-108, -3.940375084977445e-125}, // 10^-108
	{1.0e-109, 7.86909967328852e-127}, // 10^-109
	{1.0e-110, -5.1221963480540186e-127}, // 10^-110
	{1.0e-111, -8.815387795168314e-128}, // 10^-111
	{1.0e-112, 5.03408013151029e-129}, // 10^-112
	{1.0e-113, 2.148774313452248e-130}, // 10^-113
	{1.0e-114, -5.064490231692858e-131}, // 10^-114
	{1.0e-115, -5.064490231692858e-132}, // 10^-115
	{1.0e-116, 5.708726942017561e-134}, // 10^-116
	{1.0e-117, -2.951229134482378e-134}, // 10^-117
	{1.0e-118, 1.4513981513727895e-135}, // 10^-118
	{1.0e-119, -1.30024390228669e-136}, // 10^-119
	{1.0e-120, 2.1393086647876594e-137}, // 10^-120
	{1.0e-121, 2.1393086647876593e-138}, // 10^-121
	{1.0e-122, -5.9221426642928475e-139}, // 10^-122
	{1.0e-123, -5.922142664292847e-140}, // 10^-123
	{1.0e-124, 6.673875037395444e-141}, // 10^-124
	{1.0e-125, -1.198636026159738e-142}, // 10^-125
	{1.0e-126, 5.361789860136247e-143}, // 10^-126
	{1.0e-127, -2.838742497733734e-144}, // 10^-127
	{1.0e-128, -5.401408859568103e-145}, // 10^-128
	{1.0e-129, 7.411922949603743e-146}, // 10^-129
	{1.0e-130, -8.604741811861064e-147}, // 10^-130
	{1.0e-131, 1.4056736640544399e-148}, // 10^-131
	{1.0e-132, 1.40567366405444e-149}, // 10^-132
	{1.0e-133, -6.414963426504548e-150}, // 10^-133
	{1.0e-134, -3.9710143357048646e-151}, // 10^-134
	{1.0e-135, -3.971014335704865e-152}, // 10^-135
	{1.0e-136, -1.5234388133035856e-154}, // 10^-136
	{1.0e-137, 2.2343251526537078e-154}, // 10^-137
	{1.0e-138, -6.71568372478654e-155}, // 10^-138
	{1.0e-139, -2.9865133591864373e-156}, // 10^-139
	{1.0e-140, 1.674949597813692e-157}, // 10^-140
	{1.0e-141, -4.151879098436469e-158}, // 10^-141
	{1.0e-142, -4.1518790984364693e-159}, // 10^-142
	{1.0e-143, 4.952540739454408e-160}, // 10^-143
	{1.0e-144, 4.952540739454408e-161}, // 10^-144
	{1.0e-145, 8.508954738630531e-162}, // 10^-145
	{1.0e-146, -2.6048390087948555e-163}, // 10^-146
	{1.0e-147, 2.9520578649178384e-164}, // 10^-147
	{1.0e-148, 6.425118410988272e-165}, // 10^-148
	{1.0e-149, 2.08379272840023e-166}, // 10^-149
	{1.0e-150, -6.295358232172964e-168}, // 10^-150
	{1.0e-151, 6.153785555826519e-168}, // 10^-151
	{1.0e-152, -6.564942029880635e-169}, // 10^-152
	{1.0e-153, -3.9152071161916445e-170}, // 10^-153
	{1.0e-154, 2.7091301680308315e-171}, // 10^-154
	{1.0e-155, -1.431080634608216e-172}, // 10^-155
	{1.0e-156, -4.018712386257621e-173}, // 10^-156
	{1.0e-157, 5.684906682427647e-174}, // 10^-157
	{1.0e-158, -6.444617153428937e-175}, // 10^-158
	{1.0e-159, 1.1363352439814277e-176}, // 10^-159
	{1.0e-160, 1.1363352439814277e-177}, // 10^-160
	{1.0e-161, -2.8120774630031374e-178}, // 10^-161
	{1.0e-162, 4.591196362592922e-179}, // 10^-162
	{1.0e-163, 7.675893789924614e-180}, // 10^-163
	{1.0e-164, 3.8200220057599995e-181}, // 10^-164
	{1.0e-165, -9.998177244457687e-183}, // 10^-165
	{1.0e-166, -4.012217555824374e-183}, // 10^-166
	{1.0e-167, -2.4671776660111743e-185}, // 10^-167
	{1.0e-168, -4.953592503130188e-185}, // 10^-168
	{1.0e-169, -2.011795792799519e-186}, // 10^-169
	{1.0e-170, 1.6654500951138174e-187}, // 10^-170
	{1.0e-171, 1.6654500951138175e-188}, // 10^-171
	{1.0e-172, -4.0802466047507706e-189}, // 10^-172
	{1.0e-173, -4.0802466047507707e-190}, // 10^-173
	{1.0e-174, 4.085789420184388e-192}, // 10^-174
	{1.0e-175, 4.085789420184388e-193}, // 10^-175
	{1.0e-176, 4.085789420184388e-194}, // 10^-176
	{1.0e-177, 4.792197640035245e-194}, // 10^-177
	{1.0e-178, 4.792197640035245e-195}, // 10^-178
	{1.0e-179, -2.0572065756160147e-196}, // 10^-179
	{1.0e-180, -2.0572065756160147e-197}, // 10^-180
	{1.0e-181, -4.732755097354788e-198}, // 10^-181
	{1.0e-182, -4.732755097354788e-199}, // 10^-182
	{1.0e-183, -5.522105321379547e-201}, // 10^-183
	{1.0e-184, -5.777891238658996e-201}, // 10^-184
	{1.0e-185, 7.542096444923057e-203}, // 10^-185
	{1.0e-186, 8.919335748431433e-203}, // 10^-186
	{1.0e-187, -1.287071881492476e-204}, // 10^-187
	{1.0e-188, 5.091932887209967e-205}, // 10^-188
	{1.0e-189, -6.868701054107114e-206}, // 10^-189
	{1.0e-190, -1.88510357855833e-207}, // 10^-190
	{1.0e-191, -1.8851035785583302e-208}, // 10^-191
	{1.0e-192, -9.671974634103305e-209}, // 10^-192
	{1.0e-193, -4.8051802243876956e-210}, // 10^-193
	{1.0e-194, -1.7634337183154398e-211}, // 10^-194
	{1.0e-195, -9.367799983496079e-212}, // 10^-195
	{1.0e-196, -4.61507106775818e-213}, // 10^-196
	{1.0e-197, 1.3258400769141948e-214}, // 10^-197
	{1.0e-198, 8.751979007754662e-215}, // 10^-198
	{1.0e-199, 1.7899737600917242e-216}, // 10^-199
	{1.0e-200, 1.789973760091724e-217}, // 10^-200
	{1.0e-201, 5.416018159916171e-218}, // 10^-201
	{1.0e-202, -3.649092839644947e-219}, // 10^-202
	{1.0e-203, -3.649092839644947e-220}, // 10^-203
	{1.0e-204, -1.080338554413851e-222}, // 10^-204
	{1.0e-205, -1.0803385544138508e-223}, // 10^-205
	{1.0e-206, -2.8744861868504178e-223}, // 10^-206
	{1.0e-207, 7.499710055933455e-224}, // 10^-207
	{1.0e-208, -9.790617015372999e-225}, // 10^-208
	{1.0e-209, -4.3873898055897326e-226}, // 10^-209
	{1.0e-210, -4.387389805589733e-227}, // 10^-210
	{1.0e-211, -8.60866106323291e-228}, // 10^-211
	{1.0e-212, 4.582811616902019e-229}, // 10^-212
	{1.0e-213, 4.582811616902019e-230}, // 10^-213
	{1.0e-214, 8.705146829444185e-231}, // 10^-214
	{1.0e-215, -4.177150709750082e-232}, // 10^-215
	{1.0e-216, -4.177150709750082e-233}, // 10^-216
	{1.0e-217, -8.20286869074829e-234}, // 10^-217
	{1.0e-218, -3.17072121450053e-235}, // 10^-218
	{1.0e-219, -3.17072121450053e-236}, // 10^-219
	{1.0e-220, 7.606440013180328e-238}, // 10^-220
	{1.0e-221, -1.696459258568569e-238}, // 10^-221
	{1.0e-222, -4.767838333426821e-239}, // 10^-222
	{1.0e-223, 2.910609353718809e-240}, // 10^-223
	{1.0e-224, -1.8884204507472098e-241}, // 10^-224
	{1.0e-225, 4.110366804835314e-242}, // 10^-225
	{1.0e-226, 7.859608839574391e-243}, // 10^-226
	{1.0e-227, 5.5163325678624684e-244}, // 10^-227
	{1.0e-228, -3.2709534510572446e-245}, // 10^-228
	{1.0e-229, -6.932322625607125e-246}, // 10^-229
	{1.0e-230, -4.64396689151345e-247}, // 10^-230
	{1.0e-231, 1.0769224437207383e-248}, // 10^-231
	{1.0e-232, -2.498633390800629e-249}, // 10^-232
	{1.0e-233, 4.205533798926935e-250}, // 10^-233
	{1.0e-234, 4.205533798926935e-251}, // 10^-234
	{1.0e-235, 4.2055337989269347e-252}, // 10^-235
	{1.0e-236, -4.5238505626974977e-253}, // 10^-236
	{1.0e-237, 9.320146633177728e-255}, // 10^-237
	{1.0e-238, 9.320146633177728e-256}, // 10^-238
	{1.0e-239, -7.592774752331086e-256}, // 10^-239
	{1.0e-240, 3.063212017229988e-257}, // 10^-240
	{1.0e-241, 3.0632120172299876e-258}, // 10^-241
	{1.0e-242, 3.0632120172299876e-259}, // 10^-242
	{1.0e-243, 4.61652747317616e-261}, // 10^-243
	{1.0e-244, 6.965550922098545e-261}, // 10^-244
	{1.0e-245, 6.965550922098545e-262}, // 10^-245
	{1.0e-246, 4.424965697574745e-263}, // 10^-246
	{1.0e-247, -1.9264973637347564e-264}, // 10^-247
	{1.0e-248, 2.0431670495836817e-265}, // 10^-248
	{1.0e-249, -5.39995372538839e-266}, // 10^-249
	{1.0e-250, -5.39995372538839e-267}, // 10^-250
	{1.0e-251, -1.5233283217571027e-268}, // 10^-251
	{1.0e-252, 5.745344310051561e-269}, // 10^-252
	{1.0e-253, -6.369110076296212e-270}, // 10^-253
	{1.0e-254, 8.773957906638505e-271}, // 10^-254
	{1.0e-255, -6.904595826956932e-273}, // 10^-255
	{1.0e-256, 2.2671708827212437e-273}, // 10^-256
	{1.0e-257, 2.2671708827212437e-274}, // 10^-257
	{1.0e-258, 4.5778196838282254e-275}, // 10^-258
	{1.0e-259, -6.975424321706684e-276}, // 10^-259
	{1.0e-260, 3.8557419334822936e-277}, // 10^-260
	{1.0e-261, 1.5992489636512566e-278}, // 10^-261
	{1.0e-262, -1.2213672486375395e-279}, // 10^-262
	{1.0e-263, -1.2213672486375395e-280}, // 10^-263
	{1.0e-264, -1.2213672486375396e-281}, // 10^-264
	{1.0e-265, 1.533140771175738e-282}, // 10^-265
	{1.0e-266, 1.533140771175738e-283}, // 10^-266
	{1.0e-267, 1.533140771175738e-284}, // 10^-267
	{1.0e-268, 4.223090009274642e-285}, // 10^-268
	{1.0e-269, 4.223090009274642e-286}, // 10^-269
	{1.0e-270, -4.183001359784433e-287}, // 10^-270
	{1.0e-271, 3.6977092987084495e-288}, // 10^-271
	{1.0e-272, 6.9813387397471505e-289}, // 10^-272
	{1.0e-273, -9.436808465446355e-290}, // 10^-273
	{1.0e-274, 3.389869038611072e-291}, // 10^-274
	{1.0e-275, 6.596538414625428e-292}, // 10^-275
	{1.0e-276, -9.436808465446355e-293}, // 10^-276
	{1.0e-277, 3.0892437846097255e-294}, // 10^-277
	{1.0e-278, 6.220756847123746e-295}, // 10^-278
	{1.0e-279, -5.52241713730383e-296}, // 10^-279
	{1.0e-280, 4.263561183052483e-297}, // 10^-280
	{1.0e-281, -1.8526752671702123e-298}, // 10^-281
	{1.0e-282, -1.8526752671702124e-299}, // 10^-282
	{1.0e-283, 5.3147893229345085e-300}, // 10^-283
	{1.0e-284, -3.6445414146963927e-301}, // 10^-284
	{1.0e-285, -7.377595888709268e-302}, // 10^-285
	{1.0e-286, -5.044436842451221e-303}, // 10^-286
	{1.0e-287, -2.1279880346286618e-304}, // 10^-287
	{1.0e-288, -5.773549044406861e-305}, // 10^-288
	{1.0e-289, -1.216597782184112e-306}, // 10^-289
	{1.0e-290, -6.912786859962548e-307}, // 10^-290
	{1.0e-291, 3.767567660872019e-308}, // 10^-291
	{1.0e-292, -5.132727773156785e-309}, // 10^-292
	{1.0e-293, -5.1327277731568e-310}, // 10^-293
	{1.0e-294, -1.656049869239e-311}, // 10^-294
	{1.0e-295, -6.001897249136e-312}, // 10^-295
	{1.0e-296, -5.6958802427e-314}, // 10^-296
	{1.0e-297, -3.9647812897e-314}, // 10^-297
	{1.0e-298, 8.76719346e-315}, // 10^-298
	{1.0e-299, 8.097092e-317}, // 10^-299
	{1.0e-300, -2.5059094e-317}, // 10^-300
	{1.0e-301, -6.65043e-318}, // 10^-301
	{1.0e-302, 3.7109e-319}, // 10^-302
	{1.0e-303, 6.9485e-320}, // 10^-303
	{1.0e-304, 2.9e-321}, // 10^-304
	{1.0e-305, 4.0e-323}, // 10^-305
	{1.0e-306, -3.0e-323}, // 10^-306
	{1.0e-307, 1.0e-323}, // 10^-307
	{1.0e-308, 0}, // 10^-308
	{1.0e-309, math.Copysign(0, -1)}, // 10^-309
	{1.0e-310, 0}, // 10^-310
	{1.0e-311, 0}, // 10^-311
	{1.0e-312, 0}, // 10^-312
	{1.0e-313, math.Copysign(0, -1)}, // 10^-313
	{1.0e-314, 0}, // 10^-314
	{1.0e-315, 0}, // 10^-315
	{1.0e-316, 0}, // 10^-316
	{1.0e-317, math.Copysign(0, -1)}, // 10^-317
	{1.0e-318, 0}, // 10^-318
	{1.0e-319, 0}, // 10^-319
	{1.0e-320, 0}, // 10^-320
	{1.0e-321, 0}, // 10^-321
	{1.0e-322, 0}, // 10^-322
}
