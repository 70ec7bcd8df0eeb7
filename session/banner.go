package session

// Banner is printed once when a console or relay session starts.
const Banner = `                                                                  
   _____                      _        _____                      
  / ____|                    | |      |  __ \                     
 | |     ___  _ __  ___  ___ | | ___  | |  | |_ __ __ ___      __ 
 | |    / _ \| '_ \/ __|/ _ \| |/ _ \ | |  | | '__/ _` + "`" + ` \ \ /\ / / 
 | |___| (_) | | | \__ \ (_) | |  __/ | |__| | | | (_| |\ V  V /  
  \_____\___/|_| |_|___/\___/|_|\___| |_____/|_|  \__,_| \_/\_/   
                                                                  
                                                                  
`

// Prompt precedes every interactive command line.
const Prompt = "enter command: "
