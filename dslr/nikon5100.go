package dslr

// Nikon 5100 (NPL) RGB spectral sensitivities, 380 nm to 780 nm sampled
// every 5 nm, peak-normalized per channel.
var nikon5100 = SpectralSensitivities{
	Name: "Nikon 5100 (NPL)",
	Red: Channel{
		wavelengths: []float64{
			380, 385, 390, 395, 400, 405, 410, 415,
			420, 425, 430, 435, 440, 445, 450, 455,
			460, 465, 470, 475, 480, 485, 490, 495,
			500, 505, 510, 515, 520, 525, 530, 535,
			540, 545, 550, 555, 560, 565, 570, 575,
			580, 585, 590, 595, 600, 605, 610, 615,
			620, 625, 630, 635, 640, 645, 650, 655,
			660, 665, 670, 675, 680, 685, 690, 695,
			700, 705, 710, 715, 720, 725, 730, 735,
			740, 745, 750, 755, 760, 765, 770, 775,
			780,
		},
		values: []float64{
			0.00156384299336578, 0.00189691771384825, 0.0, 0.0,
			0.0, 0.000717767033009733, 0.0029239746656333, 0.0129362680171374,
			0.0495978648156652, 0.076072504359704, 0.076588927082744, 0.0683338195603601,
			0.0613181618964656, 0.0547331445778976, 0.0488620474370232, 0.042845919742574,
			0.040228453326915, 0.0434079599226324, 0.0476202143117743, 0.0507718848055939,
			0.052803295972255, 0.0525712202549509, 0.0478946390284595, 0.0482399417048386,
			0.0502292408971803, 0.0550764973500143, 0.0637021190117862, 0.08038951305896,
			0.100387503998312, 0.118613149023134, 0.12360875120338, 0.103062499327877,
			0.0763410836067272, 0.052780863646409, 0.0411887383105865, 0.0390438535193105,
			0.0425442944008912, 0.0602131324106802, 0.111796217050668, 0.269670597032762,
			0.564503379906391, 0.853601269472614, 0.981032421815062, 1.0,
			0.96307105371259, 0.905520618980431, 0.834278416526453, 0.767987337625103,
			0.70366798041158, 0.639164844761237, 0.570812921737763, 0.495817961931588,
			0.438339134523681, 0.388969922604069, 0.342956212054847, 0.29278541836294,
			0.237707180731193, 0.164913868031785, 0.0912877170637715, 0.0420561504728359,
			0.0205826787767838, 0.0102868059636961, 0.00540759846247262, 0.00272409261591003,
			0.00127834798711079, 0.000781231183741323, 0.0004798142194027, 0.000491333564285711,
			0.000174148977963402, 0.00012017462571764, 0.0, 6.12e-05,
			0.0, 0.0, 0.000310997549460165, 0.0,
			0.0, 0.0, 8.56e-05, 0.000138313728652475,
			3.62e-05,
		},
	},
	Green: Channel{
		wavelengths: []float64{
			380, 385, 390, 395, 400, 405, 410, 415,
			420, 425, 430, 435, 440, 445, 450, 455,
			460, 465, 470, 475, 480, 485, 490, 495,
			500, 505, 510, 515, 520, 525, 530, 535,
			540, 545, 550, 555, 560, 565, 570, 575,
			580, 585, 590, 595, 600, 605, 610, 615,
			620, 625, 630, 635, 640, 645, 650, 655,
			660, 665, 670, 675, 680, 685, 690, 695,
			700, 705, 710, 715, 720, 725, 730, 735,
			740, 745, 750, 755, 760, 765, 770, 775,
			780,
		},
		values: []float64{
			0.000115, 0.00152114360178015, 0.000574304991835587, 0.0,
			0.0, 0.00119722386224553, 0.00133571498448177, 0.0131943169605281,
			0.0649710245124954, 0.115103087188289, 0.137065825470872, 0.152428525840306,
			0.168640054507453, 0.183299346050496, 0.196032634562296, 0.217336532783613,
			0.25424357380995, 0.308648119306499, 0.37346871184252, 0.429158061398937,
			0.459654324321374, 0.471064354463943, 0.488856164445248, 0.537151781040876,
			0.616491186958839, 0.707006387599689, 0.800964246013663, 0.881372566862673,
			0.938877921198385, 0.984465595765236, 1.0, 0.990840265571297,
			0.961546264629221, 0.928143883468773, 0.889102315920765, 0.834942229241612,
			0.776318075001875, 0.707314245320565, 0.63579620249171, 0.565515284503804,
			0.492755172535225, 0.424756541590758, 0.351789312260783, 0.278178498795418,
			0.211673532499619, 0.15671644549433, 0.118039620730502, 0.0888524953423144,
			0.0701018440485367, 0.0569089947089322, 0.0472987910189584, 0.0411958900255658,
			0.0352520708499122, 0.0306931314453245, 0.0268039629568395, 0.0235243011987152,
			0.0203463325247466, 0.0154584832534088, 0.00944075104617159, 0.00508102204063506,
			0.00291019166901752, 0.00162657557793382, 0.000922515691396278, 0.000497433499690269,
			0.000412159402631657, 0.000316926341046663, 0.000256214969602511, 0.0,
			0.000243535188653412, 6.02e-05, 0.0, 0.0,
			0.0, 1.71e-05, 5.21e-05, 8.85e-05,
			0.0, 0.0, 0.000138, 0.000178650172705941,
			4.25e-05,
		},
	},
	Blue: Channel{
		wavelengths: []float64{
			380, 385, 390, 395, 400, 405, 410, 415,
			420, 425, 430, 435, 440, 445, 450, 455,
			460, 465, 470, 475, 480, 485, 490, 495,
			500, 505, 510, 515, 520, 525, 530, 535,
			540, 545, 550, 555, 560, 565, 570, 575,
			580, 585, 590, 595, 600, 605, 610, 615,
			620, 625, 630, 635, 640, 645, 650, 655,
			660, 665, 670, 675, 680, 685, 690, 695,
			700, 705, 710, 715, 720, 725, 730, 735,
			740, 745, 750, 755, 760, 765, 770, 775,
			780,
		},
		values: []float64{
			0.00180956039402336, 0.000489828145441504, 0.000879430691769965, 0.0,
			0.00153246068848051, 0.00569805602282062, 0.0166082876987415, 0.0787912055921459,
			0.361713503649949, 0.659704621065123, 0.755343600103595, 0.810453127073807,
			0.87494523362473, 0.926712739911787, 0.963140880259899, 0.980650481335103,
			1.0, 0.996404674887111, 0.988969886500843, 0.95660139953158,
			0.904958869869808, 0.839409277103516, 0.751462595789634, 0.660102020322608,
			0.567068791936138, 0.479350947826039, 0.394062738703513, 0.314270618794496,
			0.24981663439426, 0.201823519247181, 0.161633950851776, 0.135161431473334,
			0.109988757160433, 0.0863943540778938, 0.0652531305921984, 0.0478559534522756,
			0.0341393230386094, 0.0240199097685193, 0.0197679359847675, 0.0163484478107301,
			0.0138173393702026, 0.0119529464796671, 0.0100090939582009, 0.00758776308929658,
			0.0064558446352165, 0.00522978285684488, 0.00365998459503787, 0.00395538505488667,
			0.00396835221654468, 0.00349138004486037, 0.00404302103181797, 0.00418929985295813,
			0.00554676856500058, 0.00546423323547744, 0.00597382847392099, 0.00630906774763779,
			0.00610412697742268, 0.00483655792375416, 0.00302664794586985, 0.00172169700987675,
			0.000780651286578176, 0.000569630708481841, 0.000275232961339382, 0.000296721378570686,
			0.000249511923042029, 8.5e-05, 0.000419168950927706, 0.000153317434441399,
			1.83e-05, 0.0, 0.000338693819452049, 0.0,
			0.0, 0.000165278287340102, 0.000177552622145371, 0.0,
			2.43e-05, 6.18e-05, 0.000262607031835065, 0.000280505370041919,
			0.0,
		},
	},
}
