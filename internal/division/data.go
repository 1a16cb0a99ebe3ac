package division

// embedded is the built-in GB/T 2260 seed: every province-level code, the
// prefectures and counties exercised by tests and demos, and a handful of
// codes retired by later revisions. Deployments needing the full historical
// dataset load it into the Postgres store and keep this table as fallback.
//
// Revision is the year of the earliest revision known to carry the code.
var embedded = []Division{
	// Province level (current).
	{Code: "110000", Name: "北京市", Revision: 1980},
	{Code: "120000", Name: "天津市", Revision: 1980},
	{Code: "130000", Name: "河北省", Revision: 1980},
	{Code: "140000", Name: "山西省", Revision: 1980},
	{Code: "150000", Name: "内蒙古自治区", Revision: 1980},
	{Code: "210000", Name: "辽宁省", Revision: 1980},
	{Code: "220000", Name: "吉林省", Revision: 1980},
	{Code: "230000", Name: "黑龙江省", Revision: 1980},
	{Code: "310000", Name: "上海市", Revision: 1980},
	{Code: "320000", Name: "江苏省", Revision: 1980},
	{Code: "330000", Name: "浙江省", Revision: 1980},
	{Code: "340000", Name: "安徽省", Revision: 1980},
	{Code: "350000", Name: "福建省", Revision: 1980},
	{Code: "360000", Name: "江西省", Revision: 1980},
	{Code: "370000", Name: "山东省", Revision: 1980},
	{Code: "410000", Name: "河南省", Revision: 1980},
	{Code: "420000", Name: "湖北省", Revision: 1980},
	{Code: "430000", Name: "湖南省", Revision: 1980},
	{Code: "440000", Name: "广东省", Revision: 1980},
	{Code: "450000", Name: "广西壮族自治区", Revision: 1980},
	{Code: "460000", Name: "海南省", Revision: 1988},
	{Code: "500000", Name: "重庆市", Revision: 1997},
	{Code: "510000", Name: "四川省", Revision: 1980},
	{Code: "520000", Name: "贵州省", Revision: 1980},
	{Code: "530000", Name: "云南省", Revision: 1980},
	{Code: "540000", Name: "西藏自治区", Revision: 1980},
	{Code: "610000", Name: "陕西省", Revision: 1980},
	{Code: "620000", Name: "甘肃省", Revision: 1980},
	{Code: "630000", Name: "青海省", Revision: 1980},
	{Code: "640000", Name: "宁夏回族自治区", Revision: 1980},
	{Code: "650000", Name: "新疆维吾尔自治区", Revision: 1980},
	{Code: "710000", Name: "台湾省", Revision: 1980},
	{Code: "810000", Name: "香港特别行政区", Revision: 1997},
	{Code: "820000", Name: "澳门特别行政区", Revision: 1999},

	// Beijing.
	{Code: "110101", Name: "东城区", Revision: 1980},
	{Code: "110102", Name: "西城区", Revision: 1980},
	{Code: "110103", Name: "崇文区", Revision: 1980}, // merged into 东城区, 2010
	{Code: "110104", Name: "宣武区", Revision: 1980}, // merged into 西城区, 2010
	{Code: "110105", Name: "朝阳区", Revision: 1980},
	{Code: "110106", Name: "丰台区", Revision: 1980},
	{Code: "110107", Name: "石景山区", Revision: 1980},
	{Code: "110108", Name: "海淀区", Revision: 1980},
	{Code: "110109", Name: "门头沟区", Revision: 1980},
	{Code: "110111", Name: "房山区", Revision: 1986},
	{Code: "110112", Name: "通州区", Revision: 1997},
	{Code: "110113", Name: "顺义区", Revision: 1998},
	{Code: "110114", Name: "昌平区", Revision: 1999},
	{Code: "110115", Name: "大兴区", Revision: 2001},
	{Code: "110116", Name: "怀柔区", Revision: 2001},
	{Code: "110117", Name: "平谷区", Revision: 2001},
	{Code: "110118", Name: "密云区", Revision: 2015},
	{Code: "110119", Name: "延庆区", Revision: 2015},

	// Shanghai.
	{Code: "310101", Name: "黄浦区", Revision: 1980},
	{Code: "310103", Name: "卢湾区", Revision: 1980}, // merged into 黄浦区, 2011
	{Code: "310104", Name: "徐汇区", Revision: 1980},
	{Code: "310105", Name: "长宁区", Revision: 1980},
	{Code: "310106", Name: "静安区", Revision: 1980},
	{Code: "310107", Name: "普陀区", Revision: 1980},
	{Code: "310108", Name: "闸北区", Revision: 1980}, // merged into 静安区, 2015
	{Code: "310109", Name: "虹口区", Revision: 1980},
	{Code: "310110", Name: "杨浦区", Revision: 1980},
	{Code: "310112", Name: "闵行区", Revision: 1992},
	{Code: "310113", Name: "宝山区", Revision: 1988},
	{Code: "310114", Name: "嘉定区", Revision: 1992},
	{Code: "310115", Name: "浦东新区", Revision: 1992},
	{Code: "310116", Name: "金山区", Revision: 1997},
	{Code: "310117", Name: "松江区", Revision: 1998},
	{Code: "310118", Name: "青浦区", Revision: 1999},
	{Code: "310120", Name: "奉贤区", Revision: 2001},
	{Code: "310151", Name: "崇明区", Revision: 2016},

	// Chengdu.
	{Code: "510100", Name: "成都市", Revision: 1983},
	{Code: "510104", Name: "锦江区", Revision: 1990},
	{Code: "510105", Name: "青羊区", Revision: 1990},
	{Code: "510106", Name: "金牛区", Revision: 1990},
	{Code: "510107", Name: "武侯区", Revision: 1990},
	{Code: "510108", Name: "成华区", Revision: 1990},
	{Code: "510112", Name: "龙泉驿区", Revision: 1983},
	{Code: "510113", Name: "青白江区", Revision: 1983},
	{Code: "510114", Name: "新都区", Revision: 2001},
	{Code: "510115", Name: "温江区", Revision: 2002},
	{Code: "510116", Name: "双流区", Revision: 2015},
	{Code: "510117", Name: "郫都区", Revision: 2016},
	{Code: "510118", Name: "新津区", Revision: 2020},
	{Code: "510121", Name: "金堂县", Revision: 1983},
	{Code: "510129", Name: "大邑县", Revision: 1983},
	{Code: "510131", Name: "蒲江县", Revision: 1983},
	{Code: "510132", Name: "新津县", Revision: 1983}, // became 新津区 (510118), 2020

	// Guangzhou and Shenzhen.
	{Code: "440100", Name: "广州市", Revision: 1983},
	{Code: "440103", Name: "荔湾区", Revision: 1983},
	{Code: "440104", Name: "越秀区", Revision: 1983},
	{Code: "440105", Name: "海珠区", Revision: 1983},
	{Code: "440106", Name: "天河区", Revision: 1985},
	{Code: "440111", Name: "白云区", Revision: 1987},
	{Code: "440112", Name: "黄埔区", Revision: 1983},
	{Code: "440300", Name: "深圳市", Revision: 1983},
	{Code: "440303", Name: "罗湖区", Revision: 1990},
	{Code: "440304", Name: "福田区", Revision: 1990},
	{Code: "440305", Name: "南山区", Revision: 1990},
	{Code: "440306", Name: "宝安区", Revision: 1993},
}
