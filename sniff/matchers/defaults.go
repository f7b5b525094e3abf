package matchers

// Patterns meant for UpcasedMulti are written against upcased lines.
const assignmentPattern = `["']?[A-Z0-9_-]*(SECRET|PRIVATE[-_]?KEY|PASSWORD|PASSWD|SALT|API[-_]?KEY|TOKEN)["']?\s*(=|:|:=|=>|\s)\s*["'][A-Z0-9.$+=&\/_\\-]{12,}["']`
const privateKeyHeaderPattern = `-----BEGIN(.*)PRIVATE KEY-----`
const cryptMD5Pattern = `\$1\$[A-Z0-9./]{1,16}\$[A-Z0-9./]{22}`
const cryptSHA256Pattern = `\$5\$[A-Z0-9./]{1,16}\$[A-Z0-9./]{43}`
const cryptSHA512Pattern = `\$6\$[A-Z0-9./]{1,16}\$[A-Z0-9./]{86}`

const awsAccessKeyIDPattern = `(^|[^A-Z0-9])A(KIA|SIA)[A-Z0-9]{16}`
const awsSecretAccessKeyPattern = `(?i)(aws_?)?secret_?(access_?)?key["']?\s*(:|=>|=)\s*["']?[A-Za-z0-9/\+=]{40}`
const googleAPIKeyPattern = `AIza[0-9A-Za-z\-_]{35}`

const connectionStringPattern = `(?i)\b(postgres(ql)?|mysql|mariadb|mongodb(\+srv)?|redis|amqps?|mssql)://[^\s:@/]+:[^\s@/]+@`

const bashStringInterpolationPattern = `"$`
const fakePattern = `FAKE`
const changePattern = `CHANGE`
const replacePattern = `REPLACE`
const examplePattern = `EXAMPLE`

// Credentials matches hard-coded credential assignments, private-key
// headers, and crypt-style password hashes.
func Credentials() Matcher {
	return UpcasedMulti(
		Filter(Format(assignmentPattern), "SECRET", "PRIVATE", "PASSWORD", "PASSWD", "SALT", "API", "TOKEN"),
		Format(privateKeyHeaderPattern),
		Filter(Format(cryptMD5Pattern), "$1$"),
		Filter(Format(cryptSHA256Pattern), "$5$"),
		Filter(Format(cryptSHA512Pattern), "$6$"),
	)
}

// CloudAccessKeys matches access-key shapes issued by cloud providers. Key
// IDs keep their exact casing; lowercase lookalikes are prose, not keys.
func CloudAccessKeys() Matcher {
	return Multi(
		Filter(Format(awsAccessKeyIDPattern), "AKIA", "ASIA"),
		Format(awsSecretAccessKeyPattern),
		Filter(Format(googleAPIKeyPattern), "AIza"),
	)
}

// ConnectionStrings matches database and broker URLs carrying embedded
// user:password credentials.
func ConnectionStrings() Matcher {
	return Filter(Format(connectionStringPattern), "://")
}

// DefaultExclusion rejects the usual placeholder lines: documentation
// values, templated values, and interpolated shell strings.
func DefaultExclusion() Matcher {
	return UpcasedMulti(
		Substring(bashStringInterpolationPattern),
		Substring(fakePattern),
		Substring(examplePattern),
		Substring(changePattern),
		Substring(replacePattern),
	)
}
