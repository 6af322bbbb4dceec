package topics

// stopwords are Portuguese function words and filler terms excluded from
// topic extraction even when the tagger marks them as nouns.
var stopwords = map[string]bool{
	"a": true, "o": true, "as": true, "os": true,
	"um": true, "uma": true, "uns": true, "umas": true,
	"de": true, "do": true, "da": true, "dos": true, "das": true,
	"em": true, "no": true, "na": true, "nos": true, "nas": true,
	"por": true, "para": true, "pra": true, "com": true, "sem": true,
	"que": true, "se": true, "e": true, "ou": true, "mas": true,
	"eu": true, "ele": true, "ela": true, "eles": true, "elas": true,
	"meu": true, "minha": true, "seu": true, "sua": true,
	"este": true, "esta": true, "esse": true, "essa": true, "isso": true,
	"aquele": true, "aquela": true, "aquilo": true,
	"foi": true, "ser": true, "estar": true, "ter": true,
	"muito": true, "pouco": true, "mais": true, "menos": true,
	"bem": true, "mal": true, "ja": true, "já": true,
	"nao": true, "não": true, "sim": true,
	"coisa": true, "coisas": true, "vez": true, "vezes": true,
	"dia": true, "dias": true,
}
