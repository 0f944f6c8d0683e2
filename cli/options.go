package cli

type Options struct {
	Project     string   `short:"p" long:"project" description:"project identifier" required:"true"`
	Endpoint    string   `short:"e" long:"endpoint" description:"platform API endpoint"`
	UserID      string   `short:"u" long:"user" description:"end user identifier" required:"true"`
	Operation   string   `short:"o" long:"operation" description:"operation to run" choice:"status" choice:"connect" choice:"credential-form" default:"status"`
	AppKeys     []string `short:"a" long:"app" description:"app key, repeatable for status" required:"true"`
	Fields      string   `short:"f" long:"fields" description:"connection fields as inline JSON"`
	SecretURL   string   `short:"s" long:"secret" description:"secret URL holding connection fields JSON"`
	SecretKey   string   `short:"k" long:"key" description:"secret encryption key"`
	DisplayName string   `short:"d" long:"display-name" description:"name shown instead of the platform's"`
}
